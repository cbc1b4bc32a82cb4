package examples

import (
	"context"
	"errors"
	"fmt"
	"github.com/reusedev/pattern-hub/config"
	"github.com/reusedev/pattern-hub/internal/modules/logs"
	"github.com/reusedev/pattern-hub/tools"
	"github.com/rs/zerolog"
	"io"
	"sort"
)

var (
	ErrMissingArguments = errors.New("no correct arguments provided, please provide a pattern name and type")
	ErrUnknownExample   = errors.New("unknown example")
)

// Env is what an example may touch while it runs.
type Env struct {
	Out     io.Writer
	Config  *config.Config
	Journal *logs.Journal
}

type Runner func(ctx context.Context, env *Env) error

var runners = map[string]Runner{
	"Observer/conceptual":  observerConceptual,
	"Observer/real-world":  observerRealWorld,
	"Strategy/conceptual":  strategyConceptual,
	"Strategy/real-world":  strategyRealWorld,
	"Singleton/conceptual": singletonConceptual,
	"Singleton/real-world": singletonRealWorld,
}

// Key maps a pattern name and kind to the example key, e.g.
// ("observer", "conceptual") -> "Observer/conceptual".
func Key(pattern, kind string) string {
	return tools.Capitalize(pattern) + "/" + kind
}

func List() []string {
	keys := make([]string, 0, len(runners))
	for k := range runners {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func Run(ctx context.Context, pattern, kind string, env *Env) error {
	if pattern == "" || kind == "" {
		return ErrMissingArguments
	}
	key := Key(pattern, kind)
	run, ok := runners[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownExample, key)
	}
	if env.Config == nil {
		env.Config = config.Default()
	}
	if env.Journal == nil {
		env.Journal = logs.DefaultJournal()
	}
	logs.Logger.Debug().Str("example", key).Msg("running example")
	if err := run(ctx, env); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func consoleLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      true,
		PartsExclude: []string{zerolog.TimestampFieldName, zerolog.LevelFieldName},
	})
}
