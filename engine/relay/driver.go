// Package relay implements a local stand-in for the relay chain. It schedules
// rounds, validates the collations it receives the way a backing validator
// would, and answers with a seconded statement or abandons the collation.
package relay

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"

	"github.com/addchain/collator/engine/collator"
	"github.com/addchain/collator/model/collation"
	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/module"
	"github.com/addchain/collator/module/component"
	"github.com/addchain/collator/module/irrecoverable"
	"github.com/addchain/collator/module/local"
	"github.com/addchain/collator/stf"
	"github.com/addchain/collator/utils/logging"
)

// DefaultRoundInterval is the time between two rounds.
const DefaultRoundInterval = 6 * time.Second

// Driver drives a collator through rounds. Every round it announces the
// currently included head, validates the returned collation and, if it is
// valid, seconds it and includes its head.
type Driver struct {
	*component.ComponentManager
	log      zerolog.Logger
	metrics  module.RelayMetrics
	collator collator.Collator
	code     []byte
	codeHash parachain.Identifier
	interval time.Duration

	number   *atomic.Uint32
	mu       sync.Mutex
	included parachain.HeadData
}

var _ component.Component = (*Driver)(nil)

// New creates a driver that starts from the given genesis head and validates
// with the given validation code.
func New(log zerolog.Logger, collector module.RelayMetrics, c collator.Collator, code []byte, genesis parachain.HeadData, interval time.Duration) *Driver {
	if interval <= 0 {
		interval = DefaultRoundInterval
	}

	d := &Driver{
		log:      log.With().Str("engine", "relay").Logger(),
		metrics:  collector,
		collator: c,
		code:     code,
		codeHash: parachain.MakeID(code),
		interval: interval,
		number:   atomic.NewUint32(0),
		included: genesis,
	}
	d.ComponentManager = component.NewComponentManagerBuilder().
		AddWorker(d.loop).
		Build()
	return d
}

// Included returns the head of the last included candidate.
func (d *Driver) Included() parachain.HeadData {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.included
}

func (d *Driver) loop(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	ready()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			err := d.ProcessRound()
			if err != nil {
				d.log.Warn().Err(err).Msg("round failed")
			}
		}
	}
}

// ProcessRound runs a single round: announce, collate, validate, answer.
// Rounds must not run concurrently.
//
// Expected errors during normal operations:
//   - any rejection returned by the collator
//   - stf.InvalidCandidateError if the collation does not validate
//   - InvalidDescriptorError if the candidate descriptor does not match
func (d *Driver) ProcessRound() error {
	number := d.number.Inc()
	relayParent := relayParentID(number)
	parent := d.Included()
	d.metrics.RelayRound(number)

	data := &collation.ValidationData{
		ParentHead:             parent.Encode(),
		RelayParentNumber:      number,
		RelayParentStorageRoot: parachain.MakeID(relayParent[:]),
		MaxPoVSize:             collation.MaxPoVSize,
	}

	result, err := d.collator.Collate(relayParent, data)
	if err != nil {
		return fmt.Errorf("collator rejected round %d: %w", number, err)
	}

	head, err := d.validate(parent, relayParent, data, result)
	if err != nil {
		d.metrics.CandidateRejected()
		result.Confirmation.Abandon()
		return fmt.Errorf("candidate of round %d is invalid: %w", number, err)
	}

	signal := &collation.SecondedSignal{
		RelayParent: relayParent,
		Statement: collation.Statement{
			Kind: collation.StatementSeconded,
			Candidate: &collation.CandidateReceipt{
				Descriptor:      result.Descriptor,
				CommitmentsHash: parachain.MakeID(result.Collation.HeadData),
			},
		},
	}
	result.Confirmation.Deliver(signal)

	d.mu.Lock()
	d.included = head
	d.mu.Unlock()
	d.metrics.CandidateIncluded(head)

	d.log.Info().
		Uint32("relay_number", number).
		Uint64("number", head.Number).
		Hex("head_id", logging.Head(head)).
		Msg("candidate included")

	return nil
}

// validate re-executes the collation from its PoV and checks that the
// descriptor commits to what was executed.
func (d *Driver) validate(parent parachain.HeadData, relayParent parachain.Identifier, data *collation.ValidationData, result *collation.Result) (parachain.HeadData, error) {
	descriptor := result.Descriptor
	pov := result.Collation.ProofOfValidity

	if descriptor.RelayParent != relayParent {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("wrong relay parent %v", descriptor.RelayParent)
	}
	if descriptor.ValidationCodeHash != d.codeHash {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("wrong validation code hash %v", descriptor.ValidationCodeHash)
	}
	if descriptor.PoVHash != pov.Hash() {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("pov hash %v does not match pov", descriptor.PoVHash)
	}
	valid, err := local.Verify(descriptor.Collator, descriptor.Payload(), descriptor.Signature)
	if err != nil {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("could not verify collator signature: %w", err)
	}
	if !valid {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("invalid collator signature")
	}

	validation, err := stf.ValidateBlock(d.code, stf.ValidationParams{
		ParentHead:        parent.Encode(),
		BlockData:         pov.BlockData,
		RelayParentNumber: data.RelayParentNumber,
	})
	if err != nil {
		return parachain.HeadData{}, fmt.Errorf("validation failed: %w", err)
	}

	head, err := parachain.DecodeHeadData(validation.HeadData)
	if err != nil {
		return parachain.HeadData{}, irrecoverable.NewExceptionf("validation produced undecodable head: %w", err)
	}
	if head.ID() != descriptor.ParaHead {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("para head %v does not match executed head %v", descriptor.ParaHead, head.ID())
	}
	if !bytes.Equal(validation.HeadData, result.Collation.HeadData) {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("collation head %x does not match executed head %v", result.Collation.HeadData, head.ID())
	}
	if validation.HrmpWatermark != result.Collation.HrmpWatermark {
		return parachain.HeadData{}, NewInvalidDescriptorErrorf("watermark %d does not match relay parent number %d", result.Collation.HrmpWatermark, validation.HrmpWatermark)
	}

	return head, nil
}

// relayParentID derives a stand-in relay block hash from the round number.
func relayParentID(number uint32) parachain.Identifier {
	var encoded [4]byte
	binary.LittleEndian.PutUint32(encoded[:], number)
	return parachain.MakeID(encoded[:])
}
