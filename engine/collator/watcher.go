package collator

import (
	"time"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module/irrecoverable"
	"github.com/addchain/collator/utils/logging"
)

// watch returns the confirmation watcher of one collation. The watcher waits
// without timeout until the delivery point completes:
//   - closed without a signal: the collation was abandoned, nothing to do
//   - a seconded statement for our PoV: the collation is confirmed
//   - anything else: the relay chain acknowledged a different block, which is
//     thrown as a ConfirmationMismatchError
//
// Shutting down the engine ends the watcher with the collation unconfirmed.
func (e *Engine) watch(head parachain.HeadData, povHash parachain.Identifier, signals <-chan *collation.SecondedSignal, produced time.Time) func(irrecoverable.SignalerContext) {
	return func(ctx irrecoverable.SignalerContext) {
		log := e.log.With().
			Uint64("number", head.Number).
			Hex("head_id", logging.Head(head)).
			Hex("pov_hash", logging.ID(povHash)).
			Logger()

		var signal *collation.SecondedSignal
		var ok bool
		select {
		case <-ctx.Done():
			log.Debug().Msg("shutting down before collation was confirmed")
			return
		case signal, ok = <-signals:
		}

		if !ok {
			log.Debug().Msg("collation abandoned")
			e.metrics.CollationAbandoned()
			return
		}

		var statement collation.Statement
		if signal != nil {
			statement = signal.Statement
		}
		seconded, isSeconded := statement.SecondedPoVHash()
		if !isSeconded || seconded != povHash {
			log.Error().
				Str("statement", statement.String()).
				Msg("confirmation does not match produced collation")
			e.metrics.ConfirmationMismatch()
			ctx.Throw(ConfirmationMismatchError{Expected: povHash, Statement: statement})
			return
		}

		latency := time.Since(produced)
		log.Info().
			Hex("relay_parent", logging.ID(signal.RelayParent)).
			Dur("latency", latency).
			Msg("collation seconded")
		e.metrics.CollationConfirmed(latency)
	}
}
