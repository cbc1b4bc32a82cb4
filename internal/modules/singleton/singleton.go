package singleton

import (
	"sync"
	"time"
)

type Singleton struct {
	createdAt time.Time
}

var (
	instance *Singleton
	once     sync.Once
)

// GetInstance returns the single Singleton, creating it on the first call.
func GetInstance() *Singleton {
	once.Do(func() {
		instance = &Singleton{createdAt: time.Now()}
	})
	return instance
}

func (s *Singleton) CreatedAt() time.Time {
	return s.createdAt
}
