package logs

import (
	"github.com/reusedev/pattern-hub/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range tests {
		require.Equal(t, want, parseLogLevel(in), in)
	}
}

func TestInitLoggerFile(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.DebugLevel)
	path := filepath.Join(t.TempDir(), "hub.log")
	InitLogger(config.Log{Level: "info", File: path, MaxSize: 1})
	Logger.Info().Msg("written to file")

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), "written to file")
}

func TestDefaultJournalIsShared(t *testing.T) {
	j1 := DefaultJournal()
	j2 := DefaultJournal()
	require.Same(t, j1, j2)
	require.NotSame(t, j1, NewJournal())
}

func TestJournalEntries(t *testing.T) {
	j := NewJournal()
	j.Add("Hello World")
	j.Add("Hi!")
	entries := j.Entries()
	require.Equal(t, []string{"Hello World", "Hi!"}, entries)

	entries[0] = "changed"
	require.Equal(t, "Hello World", j.Entries()[0])
}

func TestJournalConcurrentAdd(t *testing.T) {
	j := NewJournal()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			j.Add("x")
		}()
	}
	wg.Wait()
	require.Len(t, j.Entries(), 50)
}
