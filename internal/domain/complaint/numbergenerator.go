package complaint

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator issues complaint numbers of the form C-YYYYMMDD-NNNN
// with an in-process daily counter.
type DefaultNumberGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{
		counters: make(map[string]int),
	}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().Format("20060102")
	g.counters[dateKey]++

	return fmt.Sprintf("C-%s-%04d", dateKey, g.counters[dateKey]), nil
}
