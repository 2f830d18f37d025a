package component

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/addchain/collator/module"
	"github.com/addchain/collator/module/irrecoverable"
	"github.com/addchain/collator/module/util"
)

// TaskSpawner is a Component that runs spawned tasks under its own
// SignalerContext. Errors thrown by a task are propagated like errors thrown
// by a worker. Tasks spawned before the component is ready are held until
// it is; tasks spawned after shutdown commenced are dropped.
//
// Tasks are not cancelled individually. On shutdown the context passed to them
// is cancelled and Done closes once every running task has returned.
type TaskSpawner struct {
	*ComponentManager
	log zerolog.Logger

	started chan struct{}
	ctx     irrecoverable.SignalerContext

	mu       sync.Mutex
	stopped  bool
	tasks    sync.WaitGroup
	spawned  uint64
	finished uint64
}

var _ module.Spawner = (*TaskSpawner)(nil)
var _ Component = (*TaskSpawner)(nil)

func NewTaskSpawner(log zerolog.Logger) *TaskSpawner {
	s := &TaskSpawner{
		log:     log.With().Str("component", "task_spawner").Logger(),
		started: make(chan struct{}),
	}
	s.ComponentManager = NewComponentManagerBuilder().
		AddWorker(s.loop).
		Build()
	return s
}

func (s *TaskSpawner) loop(ctx irrecoverable.SignalerContext, ready ReadyFunc) {
	s.ctx = ctx
	close(s.started)
	ready()

	<-ctx.Done()

	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.tasks.Wait()
}

// Spawn runs task on its own goroutine. It never blocks.
func (s *TaskSpawner) Spawn(name string, task func(ctx irrecoverable.SignalerContext)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped || util.CheckClosed(s.ShutdownSignal()) {
		s.log.Warn().Str("task", name).Msg("dropping task spawned after shutdown")
		return
	}
	s.tasks.Add(1)
	s.spawned++

	go func() {
		defer func() {
			s.mu.Lock()
			s.finished++
			s.mu.Unlock()
			s.tasks.Done()
		}()

		select {
		case <-s.started:
		case <-s.ShutdownSignal():
			return
		}
		task(s.ctx)
	}()
}

// Running returns the number of tasks that were spawned but did not return yet.
func (s *TaskSpawner) Running() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.spawned - s.finished
}
