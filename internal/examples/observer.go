package examples

import (
	"context"
	"fmt"
	"github.com/reusedev/pattern-hub/internal/modules/cache"
	"github.com/reusedev/pattern-hub/internal/modules/observer"
	"io"
)

type reactingObserver struct {
	label string
	out   io.Writer
}

func (o *reactingObserver) Update() error {
	_, err := fmt.Fprintf(o.out, "%s: Reacted to the event.\n", o.label)
	return err
}

func observerConceptual(_ context.Context, env *Env) error {
	subject := observer.NewSubject(observer.NewRegistry(observer.WithLogger(consoleLogger(env.Out))))

	observer1 := &reactingObserver{label: "ConcreteObserverA", out: env.Out}
	if _, err := subject.Subscribe(observer1); err != nil {
		return err
	}
	observer2 := &reactingObserver{label: "ConcreteObserverB", out: env.Out}
	if _, err := subject.Subscribe(observer2); err != nil {
		return err
	}

	if err := subject.SomeBusinessLogic(); err != nil {
		return err
	}
	if err := subject.SomeBusinessLogic(); err != nil {
		return err
	}

	subject.Unsubscribe(observer2)

	return subject.SomeBusinessLogic()
}

// observerRealWorld keeps a cached copy of the subject state current and
// shows that one failing observer does not stop the others.
func observerRealWorld(_ context.Context, env *Env) error {
	registry := observer.NewRegistry(
		observer.WithLogger(consoleLogger(env.Out)),
		observer.WithFailureHandler(func(e *observer.DeliveryError) {
			fmt.Fprintf(env.Out, "Client: delivery #%d failed: %v\n", e.Index, e.Err)
		}),
	)
	subject := observer.NewSubject(registry)

	expire := env.Config.CacheExpiration()
	mirror := cache.NewStateObserver(cache.NewManager[int](expire), subject, "subject_state", expire)
	odd := observer.NewFunc(func() error {
		if subject.State()%2 == 1 {
			return fmt.Errorf("odd state %d rejected", subject.State())
		}
		return nil
	})
	printer := observer.NewFunc(func() error {
		_, err := fmt.Fprintf(env.Out, "Printer: state is now %d\n", subject.State())
		return err
	})
	for _, o := range []observer.Observer{mirror, odd, printer} {
		if _, err := subject.Subscribe(o); err != nil {
			return err
		}
	}

	for _, state := range []int{2, 3, 8} {
		// failures were already reported by the handler
		_ = subject.SetState(state)
		cached, _, err := mirror.Last()
		if err != nil {
			return err
		}
		fmt.Fprintf(env.Out, "Client: cached state is %d\n", cached)
	}

	subject.Unsubscribe(odd)
	if err := subject.SetState(5); err != nil {
		return err
	}
	return nil
}
