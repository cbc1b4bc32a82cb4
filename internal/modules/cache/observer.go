package cache

import (
	"time"
)

type StateReader interface {
	State() int
}

// StateObserver mirrors the state of a subject into the cache each time the
// subject notifies.
type StateObserver struct {
	manager *Manager[int]
	source  StateReader
	key     string
	expire  time.Duration
}

func NewStateObserver(manager *Manager[int], source StateReader, key string, expire time.Duration) *StateObserver {
	return &StateObserver{
		manager: manager,
		source:  source,
		key:     key,
		expire:  expire,
	}
}

func (o *StateObserver) Update() error {
	return o.manager.SetWithExpiration(o.key, o.source.State(), o.expire)
}

// Last returns the cached state and whether one was present.
func (o *StateObserver) Last() (int, bool, error) {
	return o.manager.Lookup(o.key)
}
