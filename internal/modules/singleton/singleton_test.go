package singleton

import (
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestGetInstance(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]*Singleton, 10)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = GetInstance()
		}(i)
	}
	wg.Wait()
	for _, s := range got {
		require.Same(t, got[0], s)
	}
	require.False(t, GetInstance().CreatedAt().IsZero())
}
