// Package parachain holds the collator's view of the parachain: every header
// it produced or bootstrapped from, mapped to the state the header commits to.
package parachain

import (
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/addchain/collator/model/parachain"
	"github.com/addchain/collator/state"
	"github.com/addchain/collator/stf"
	"github.com/addchain/collator/storage"
	"github.com/addchain/collator/utils/logging"
)

// Increment is added to the state on every advancement.
const Increment uint64 = 7

// State is the head-to-state mapping of the collator. Advance is serialized:
// at most one advancement runs at any time, and each one observes all
// insertions of the advancements before it.
type State struct {
	mu      sync.Mutex
	log     zerolog.Logger
	heads   storage.HeadStates
	genesis parachain.HeadData
}

// Bootstrap initializes the state with the genesis header mapped to state 0.
// Bootstrapping on top of storage that already holds the genesis entry is a
// no-op for the storage.
func Bootstrap(log zerolog.Logger, heads storage.HeadStates) (*State, error) {
	genesis := parachain.Genesis()
	err := heads.Store(genesis, 0)
	if err != nil {
		return nil, fmt.Errorf("could not store genesis head: %w", err)
	}

	s := &State{
		log:     log.With().Str("component", "parachain_state").Logger(),
		heads:   heads,
		genesis: genesis,
	}
	s.log.Debug().
		Hex("genesis_id", logging.ID(genesis.ID())).
		Msg("parachain state bootstrapped")

	return s, nil
}

// Genesis returns the genesis header.
func (s *State) Genesis() parachain.HeadData {
	return s.genesis
}

// AtHead returns the state the given header commits to.
// Expected errors during normal operations:
//   - state.UnknownParentHeadError if the header was never ingested
func (s *State) AtHead(head parachain.HeadData) (uint64, error) {
	headID := head.ID()
	value, err := s.heads.ByHeadID(headID)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, state.WrapAsUnknownParentHeadError(headID, err)
	}
	if err != nil {
		return 0, fmt.Errorf("could not look up state of head %v: %w", headID, err)
	}
	return value, nil
}

// Advance builds the block on top of parent, executes it and records the new
// header. It returns the executed block and the new header.
// Expected errors during normal operations:
//   - state.UnknownParentHeadError if parent was never ingested
//   - stf.StateMismatchError if the recorded state of parent does not match
//     its post state
func (s *State) Advance(parent parachain.HeadData) (*parachain.BlockData, *parachain.HeadData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.AtHead(parent)
	if state.IsUnknownParentHeadError(err) {
		s.logUnknownParent(parent)
		return nil, nil, err
	}
	if err != nil {
		return nil, nil, err
	}

	block := parachain.BlockData{
		State: current,
		Add:   Increment,
	}

	parentID := parent.ID()
	head, err := stf.Execute(parentID, parent, block)
	if err != nil {
		return nil, nil, fmt.Errorf("could not execute block on parent %v: %w", parentID, err)
	}

	next := block.State + block.Add
	err = s.heads.Store(head, next)
	if err != nil {
		return nil, nil, fmt.Errorf("could not store head %v: %w", head.ID(), err)
	}

	s.log.Debug().
		Uint64("number", head.Number).
		Hex("parent_id", logging.ID(parentID)).
		Hex("head_id", logging.ID(head.ID())).
		Uint64("state", next).
		Msg("parachain state advanced")

	return &block, &head, nil
}

// HeadsAt returns every known header with the given number.
func (s *State) HeadsAt(number uint64) ([]parachain.HeadData, error) {
	ids, err := s.heads.HeadsByNumber(number)
	if err != nil {
		return nil, fmt.Errorf("could not look up heads at %d: %w", number, err)
	}
	heads := make([]parachain.HeadData, 0, len(ids))
	for _, id := range ids {
		head, err := s.heads.HeadByID(id)
		if err != nil {
			return nil, fmt.Errorf("could not retrieve head %v: %w", id, err)
		}
		heads = append(heads, *head)
	}
	return heads, nil
}

// logUnknownParent reports the headers we do know at the height of an unknown
// parent, which tells a scheduler running ahead from one on a foreign fork.
func (s *State) logUnknownParent(parent parachain.HeadData) {
	parentID := parent.ID()
	ids, err := s.heads.HeadsByNumber(parent.Number)
	if err != nil {
		s.log.Error().Err(err).Uint64("number", parent.Number).Msg("could not look up known heads")
		return
	}
	known := make([]string, 0, len(ids))
	for _, id := range ids {
		known = append(known, id.TerminalString())
	}
	s.log.Warn().
		Uint64("number", parent.Number).
		Str("parent", parentID.TerminalString()).
		Strs("known_heads", known).
		Msg("advancing on unknown parent head")
}
