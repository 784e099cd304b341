package engine

import (
	"math/rand/v2"
	"sync"
)

// RandomSource - источник случайности для проверки аварии
type RandomSource interface {
	Float64() (float64, error)
}

type seededSource struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSeededSource - детерминированный источник: одинаковое зерно дает одинаковую последовательность
func NewSeededSource(seed int64) RandomSource {
	return &seededSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Float64() (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Float64(), nil
}

// SequenceSource отдает заданные значения, после них ErrNoRandomSource
type SequenceSource struct {
	values []float64
	next   int
}

func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{values: values}
}

func (s *SequenceSource) Float64() (float64, error) {
	if s.next >= len(s.values) {
		return 0, ErrNoRandomSource
	}
	v := s.values[s.next]
	s.next++
	return v, nil
}
