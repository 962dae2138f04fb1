package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"gorm.io/gorm"

	"civicroute/internal/domain/complaint"
)

// DBNumberGenerator issues complaint numbers of the form C-YYYYMMDD-NNNN.
// A mutex serializes generation within the process; the per-day sequence is
// seeded once from MAX(number) so restarts continue where the last intake
// stopped, then advances in memory.
type DBNumberGenerator struct {
	db    *gorm.DB
	mu    sync.Mutex
	cache map[string]int
}

func NewDBNumberGenerator(db *gorm.DB) *DBNumberGenerator {
	return &DBNumberGenerator{
		db:    db,
		cache: make(map[string]int),
	}
}

var _ complaint.NumberGenerator = (*DBNumberGenerator)(nil)

func (g *DBNumberGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	dateKey := time.Now().Format("20060102")

	seq, err := g.nextSequence(ctx, dateKey)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("C-%s-%04d", dateKey, seq), nil
}

func (g *DBNumberGenerator) nextSequence(ctx context.Context, dateKey string) (int, error) {
	if seq, ok := g.cache[dateKey]; ok {
		g.cache[dateKey] = seq + 1
		return seq + 1, nil
	}

	var maxNumber string
	err := g.db.WithContext(ctx).
		Table("complaints").
		Select("MAX(number)").
		Where("number LIKE ?", fmt.Sprintf("C-%s-%%", dateKey)).
		Scan(&maxNumber).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return 0, fmt.Errorf("failed to get max complaint number: %w", err)
	}

	seq := 1
	if maxNumber != "" {
		if suffix := maxNumber[strings.LastIndex(maxNumber, "-")+1:]; suffix != "" {
			if n, parseErr := strconv.Atoi(suffix); parseErr == nil {
				seq = n + 1
			}
		}
	}

	g.cache[dateKey] = seq
	return seq, nil
}
