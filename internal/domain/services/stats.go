package services

import (
	"math"
	"math/rand"

	"github.com/ersonp/persona-core/internal/domain/entities"
)

// StatService rolls complete stat blocks from a weight table.
type StatService struct {
	table *WeightTable
	rng   *rand.Rand
}

// NewStatService creates a StatService rolling on the standard 3..18 table.
// The caller owns the random source; seed it for deterministic output.
func NewStatService(rng *rand.Rand) *StatService {
	return &StatService{table: Normal3to18, rng: rng}
}

// CompressRange pulls a 3..18 roll toward the center of the range,
// monotonically mapping it into 6..16. CompressRange(3) == 6 and
// CompressRange(18) == 16.
func CompressRange(n int) int {
	return int(math.Sqrt(float64(n * 15)))
}

// Generate rolls one value per stat type, independently. Each roll is
// compressed with probability 1/(4*len(stats)-2), regardless of stat type;
// the compression keeps rare extreme rolls rare.
func (s *StatService) Generate() map[entities.StatType]int {
	types := entities.StatTypes()
	odds := 4*len(types) - 2

	stats := make(map[entities.StatType]int, len(types))
	for _, st := range types {
		v := s.table.Sample(s.rng)
		if s.rng.Intn(odds) == 0 {
			v = CompressRange(v)
		}
		stats[st] = v
	}
	return stats
}
