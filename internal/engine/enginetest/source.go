// Package enginetest provides a scripted random source for deterministic
// engine tests.
package enginetest

import "fmt"

// Source replays queued values. Running out of values panics so a test
// notices an unexpected draw.
type Source struct {
	floats []float64
	ints   []int
}

func NewSource() *Source {
	return &Source{}
}

// Floats queues values returned by Float64.
func (s *Source) Floats(v ...float64) *Source {
	s.floats = append(s.floats, v...)
	return s
}

// Rolls queues die faces. A face f is returned by IntN as f-1.
func (s *Source) Rolls(faces ...int) *Source {
	for _, f := range faces {
		s.ints = append(s.ints, f-1)
	}
	return s
}

func (s *Source) Float64() float64 {
	if len(s.floats) == 0 {
		panic("enginetest: float stream exhausted")
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *Source) IntN(n int) int {
	if len(s.ints) == 0 {
		panic("enginetest: int stream exhausted")
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	if v < 0 || v >= n {
		panic(fmt.Sprintf("enginetest: queued face %d outside die of %d sides", v+1, n))
	}
	return v
}

// Drained reports whether every queued value was consumed.
func (s *Source) Drained() bool {
	return len(s.floats) == 0 && len(s.ints) == 0
}
