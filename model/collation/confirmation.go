package collation

import (
	"sync"
)

// ConfirmationSender is the one-shot delivery point handed to the relay
// chain together with a collation. It is completed at most once: either a
// signal is delivered, or the collation is abandoned. Both close the channel
// observed by the collator.
type ConfirmationSender struct {
	once    sync.Once
	signals chan *SecondedSignal
}

// NewConfirmationChannel creates a delivery point and the receiving end the
// collator watches.
func NewConfirmationChannel() (*ConfirmationSender, <-chan *SecondedSignal) {
	signals := make(chan *SecondedSignal, 1)
	return &ConfirmationSender{signals: signals}, signals
}

// Deliver hands the signal to the collator. It returns false if the delivery
// point was already completed. Never blocks.
func (c *ConfirmationSender) Deliver(signal *SecondedSignal) bool {
	delivered := false
	c.once.Do(func() {
		c.signals <- signal
		close(c.signals)
		delivered = true
	})
	return delivered
}

// Abandon drops the delivery point without a signal. It returns false if the
// delivery point was already completed.
func (c *ConfirmationSender) Abandon() bool {
	abandoned := false
	c.once.Do(func() {
		close(c.signals)
		abandoned = true
	})
	return abandoned
}
