// Package collator implements the collator engine, which builds one collation
// per relay-chain round and watches for the relay chain's verdict on it.
package collator

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
	"github.com/addchain/collator/module/component"
	"github.com/addchain/collator/module/local"
	"github.com/addchain/collator/module/metrics"
	"github.com/addchain/collator/state"
	pstate "github.com/addchain/collator/state/parachain"
	"github.com/addchain/collator/stf"
	"github.com/addchain/collator/utils/logging"
)

// Collator produces collations on request of the relay chain.
type Collator interface {
	// Collate builds a collation on top of the parent head announced in data.
	// It returns as soon as the collation is built; the relay chain's verdict
	// is delivered later through the returned confirmation sender.
	//
	// Expected errors during normal operations:
	//   - DecodeError if the announced parent head can not be decoded
	//   - state.UnknownParentHeadError if the parent head is unknown
	//   - stf.StateMismatchError if the parent head does not execute
	Collate(relayParent parachain.Identifier, data *collation.ValidationData) (*collation.Result, error)
}

// Engine is the collator engine. It is a component: confirmation watchers
// run on its task spawner and may throw on its context.
type Engine struct {
	*component.TaskSpawner
	log     zerolog.Logger
	metrics module.CollatorMetrics
	state   *pstate.State
	me      *local.Local
	config  *Config

	code     []byte
	codeHash parachain.Identifier
}

var _ Collator = (*Engine)(nil)
var _ component.Component = (*Engine)(nil)

func New(log zerolog.Logger, collector module.CollatorMetrics, chain *pstate.State, me *local.Local, opts ...OptionFunc) *Engine {
	config := DefaultConfig()
	for _, apply := range opts {
		apply(config)
	}

	code := stf.Code()
	return &Engine{
		TaskSpawner: component.NewTaskSpawner(log),
		log:         log.With().Str("engine", "collator").Logger(),
		metrics:     collector,
		state:       chain,
		me:          me,
		config:      config,
		code:        code.Bytes(),
		codeHash:    code.Hash(),
	}
}

// GenesisHead returns the encoded genesis header.
func (e *Engine) GenesisHead() []byte {
	return e.state.Genesis().Encode()
}

// ValidationCode returns the validation code of the parachain.
func (e *Engine) ValidationCode() []byte {
	code := make([]byte, len(e.code))
	copy(code, e.code)
	return code
}

// CollatorID returns the public identity of the collator.
func (e *Engine) CollatorID() []byte {
	return e.me.CollatorID()
}

func (e *Engine) Collate(relayParent parachain.Identifier, data *collation.ValidationData) (*collation.Result, error) {
	start := time.Now()

	parent, err := parachain.DecodeHeadData(data.ParentHead)
	if err != nil {
		e.metrics.RoundRejected(metrics.ReasonDecodeFailure)
		return nil, NewDecodeErrorf("could not decode parent head: %w", err)
	}

	block, head, err := e.state.Advance(parent)
	if err != nil {
		e.metrics.RoundRejected(rejectionReason(err))
		return nil, fmt.Errorf("could not advance parent head %v: %w", parent.ID(), err)
	}

	pov := collation.PoV{BlockData: block.Encode()}
	if e.config.CompressPoV {
		pov, err = collation.MaybeCompressPoV(pov)
		if err != nil {
			e.metrics.RoundRejected(metrics.ReasonInternal)
			return nil, fmt.Errorf("could not compress pov: %w", err)
		}
	}
	povHash := pov.Hash()

	descriptor := collation.CandidateDescriptor{
		ParaID:             e.config.ParaID,
		RelayParent:        relayParent,
		Collator:           e.me.CollatorID(),
		PoVHash:            povHash,
		ParaHead:           head.ID(),
		ValidationCodeHash: e.codeHash,
	}
	descriptor.Signature, err = e.me.Sign(descriptor.Payload())
	if err != nil {
		e.metrics.RoundRejected(metrics.ReasonInternal)
		return nil, fmt.Errorf("could not sign candidate descriptor: %w", err)
	}

	sender, signals := collation.NewConfirmationChannel()
	e.Spawn(fmt.Sprintf("confirmation-%d", head.Number), e.watch(*head, povHash, signals, time.Now()))

	e.metrics.CollationProduced(*head, len(pov.BlockData), time.Since(start))

	e.log.Info().
		Uint64("number", head.Number).
		Hex("head_id", logging.Head(*head)).
		Hex("relay_parent", logging.ID(relayParent)).
		Hex("pov_hash", logging.ID(povHash)).
		Int("pov_size", len(pov.BlockData)).
		Bool("compressed", pov.IsCompressed()).
		Msg("collation produced")

	return &collation.Result{
		Collation: collation.Collation{
			HeadData:        head.Encode(),
			ProofOfValidity: pov,
			HrmpWatermark:   data.RelayParentNumber,
		},
		Descriptor:   descriptor,
		Confirmation: sender,
	}, nil
}

func rejectionReason(err error) string {
	switch {
	case state.IsUnknownParentHeadError(err):
		return metrics.ReasonUnknownParent
	case stf.IsStateMismatchError(err):
		return metrics.ReasonStateMismatch
	default:
		return metrics.ReasonInternal
	}
}
