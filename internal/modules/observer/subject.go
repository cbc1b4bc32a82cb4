package observer

import (
	"math/rand/v2"
	"sync"
)

// Subject is a Registry that also carries business state. Changing the state
// notifies every subscribed observer.
type Subject struct {
	*Registry

	mu    sync.RWMutex
	state int
	rnd   *rand.Rand
}

type SubjectOption func(*Subject)

func WithRandSource(src rand.Source) SubjectOption {
	return func(s *Subject) {
		s.rnd = rand.New(src)
	}
}

func NewSubject(registry *Registry, opts ...SubjectOption) *Subject {
	if registry == nil {
		registry = NewRegistry()
	}
	s := &Subject{
		Registry: registry,
		rnd:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Subject) State() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Subject) SetState(v int) error {
	s.mu.Lock()
	s.state = v
	s.mu.Unlock()
	s.logger.Info().Int("state", v).Msg("Subject: My state has just changed")
	return s.Notify()
}

// SomeBusinessLogic moves the state to a random value in [0, 10].
func (s *Subject) SomeBusinessLogic() error {
	s.logger.Info().Msg("Subject: I'm doing something important.")
	s.mu.Lock()
	v := s.rnd.IntN(11)
	s.mu.Unlock()
	return s.SetState(v)
}
