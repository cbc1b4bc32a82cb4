package observer

import (
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"slices"
	"sync"
)

// DeliveryError reports one observer whose Update failed during Notify.
type DeliveryError struct {
	Index    int
	Observer Observer
	Err      error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("observer %s (#%d): %v", name(e.Observer), e.Index, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

type Option func(*Registry)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithFailureHandler is called synchronously for every failed delivery,
// before Notify moves on to the next member.
func WithFailureHandler(fn func(*DeliveryError)) Option {
	return func(r *Registry) {
		r.onFailure = fn
	}
}

// Registry keeps an ordered, duplicate free list of observers and broadcasts
// to them. The zero value is not usable, use NewRegistry.
type Registry struct {
	mu        sync.Mutex
	members   []Observer
	logger    zerolog.Logger
	onFailure func(*DeliveryError)
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Registry) Subscribe(o Observer) (Outcome, error) {
	if err := validate(o); err != nil {
		return "", err
	}
	out := r.subscribe(o)
	if out == AlreadySubscribed {
		r.logger.Info().Str("observer", name(o)).Msg("Subject: Observer has already been subscribed")
	} else {
		r.logger.Info().Str("observer", name(o)).Msg("Subject: Subscribed observer")
	}
	return out, nil
}

func (r *Registry) subscribe(o Observer) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(o) >= 0 {
		return AlreadySubscribed
	}
	r.members = append(r.members, o)
	return Added
}

func (r *Registry) Unsubscribe(o Observer) Outcome {
	if validate(o) != nil {
		return NotFound
	}
	out := r.unsubscribe(o)
	if out == NotFound {
		r.logger.Info().Str("observer", name(o)).Msg("Subject: Nonexistent observer")
	} else {
		r.logger.Info().Str("observer", name(o)).Msg("Subject: Unsubscribed observer")
	}
	return out
}

func (r *Registry) unsubscribe(o Observer) Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(o)
	if i < 0 {
		return NotFound
	}
	// slices.Delete zeroes the vacated tail slot, dropping our reference
	r.members = slices.Delete(r.members, i, i+1)
	return Removed
}

// Notify calls Update on every member subscribed when Notify was called, in
// subscription order. Members added or removed by an observer during the
// broadcast take effect from the next call. Failures do not stop delivery;
// they are collected and returned together once every member was called.
func (r *Registry) Notify() error {
	snapshot := r.Members()
	r.logger.Info().Int("observers", len(snapshot)).Msg("Subject: Notifying observers...")

	var result *multierror.Error
	for i, o := range snapshot {
		if err := deliver(o); err != nil {
			de := &DeliveryError{Index: i, Observer: o, Err: err}
			r.logger.Error().Err(err).Str("observer", name(o)).Int("index", i).Msg("observer update failed")
			if r.onFailure != nil {
				r.onFailure(de)
			}
			result = multierror.Append(result, de)
		}
	}
	return result.ErrorOrNil()
}

func (r *Registry) Members() []Observer {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Observer, len(r.members))
	copy(out, r.members)
	return out
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}

func (r *Registry) indexOf(o Observer) int {
	for i, m := range r.members {
		if m == o {
			return i
		}
	}
	return -1
}

func deliver(o Observer) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
	}()
	return o.Update()
}
