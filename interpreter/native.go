package interpreter

import "time"

// clockFn is the single built-in described in spec.md §1 and §4.4.5: zero
// arguments, returns wall-clock seconds as a double. The time source is a
// plain func field: New binds DefaultClock, and Interpreter.SetClock lets
// tests supply a fake.
type clockFn struct {
	source func() float64
}

func (clockFn) Arity() int { return 0 }

func (c clockFn) Call(*Interpreter, []Value) (Value, error) {
	return c.source(), nil
}

func (clockFn) String() string { return "<native fn>" }

// DefaultClock returns seconds since the epoch, derived from nanoseconds, satisfying
// the ≥ms-resolution contract in spec.md §6.
func DefaultClock() float64 {
	return float64(time.Now().UnixNano()) / 1e9
}
