package examples

import (
	"context"
	"fmt"
	"github.com/reusedev/pattern-hub/internal/modules/singleton"
)

func singletonConceptual(_ context.Context, env *Env) error {
	s1 := singleton.GetInstance()
	s2 := singleton.GetInstance()
	if s1 == s2 {
		fmt.Fprintln(env.Out, "Successful Singleton")
	} else {
		fmt.Fprintln(env.Out, "Failed Singleton")
	}
	return nil
}

func singletonRealWorld(_ context.Context, env *Env) error {
	logger1 := env.Journal
	logger2 := env.Journal

	logger1.Add("Hello World")
	logger2.Add("Hi!")

	fmt.Fprintf(env.Out, "%q\n", logger1.Entries())
	fmt.Fprintf(env.Out, "%q\n", logger2.Entries())
	return nil
}
