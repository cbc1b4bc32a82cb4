package observer

import (
	"errors"
	"reflect"
)

var ErrInvalidObserver = errors.New("invalid observer")

// Observer receives notifications from a Registry. A returned error or a
// panic counts as a failed delivery for that observer only.
type Observer interface {
	Update() error
}

type funcObserver struct {
	fn func() error
}

func (f *funcObserver) Update() error {
	return f.fn()
}

// NewFunc wraps fn in a new handle. Every call returns a distinct identity,
// so wrapping the same function twice yields two members.
func NewFunc(fn func() error) Observer {
	return &funcObserver{fn: fn}
}

func validate(o Observer) error {
	if o == nil {
		return ErrInvalidObserver
	}
	v := reflect.ValueOf(o)
	switch v.Kind() {
	case reflect.Ptr, reflect.Chan:
		if v.IsNil() {
			return ErrInvalidObserver
		}
	}
	// checks the dynamic contents too, e.g. an interface field holding a slice
	if !v.Comparable() {
		return ErrInvalidObserver
	}
	return nil
}

func name(o Observer) string {
	if o == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(o)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
