package services

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/persona-core/internal/domain/entities"
	"github.com/ersonp/persona-core/internal/domain/ports"
)

// AssemblerService composes generated names, stats, alignment, and baseline
// needs into Persons.
type AssemblerService struct {
	source ports.NameSource
	stats  *StatService
	needs  *NeedService
	rng    *rand.Rand
}

// NewAssemblerService creates an AssemblerService. The random source is
// shared with the caller; seed it for deterministic populations.
func NewAssemblerService(source ports.NameSource, stats *StatService, needs *NeedService, rng *rand.Rand) *AssemblerService {
	return &AssemblerService{
		source: source,
		stats:  stats,
		needs:  needs,
		rng:    rng,
	}
}

// Assemble generates one person for the given culture. Romanized name parts
// are preferred when the source provides them. The name's comparison order
// is derived from the per-part labels: parts compare in ascending label
// order.
func (s *AssemblerService) Assemble(culture string) (*entities.Person, error) {
	raw, err := s.source.Generate(culture)
	if err != nil {
		return nil, fmt.Errorf("generating raw name: %w", err)
	}

	parts := raw.Romanized
	if len(parts) == 0 {
		parts = raw.Native
	}
	if len(raw.Labels) != len(parts) {
		return nil, fmt.Errorf("name source returned %d labels for %d name parts", len(raw.Labels), len(parts))
	}

	name, err := entities.NewName(parts, sortOrderFromLabels(raw.Labels))
	if err != nil {
		return nil, fmt.Errorf("building name: %w", err)
	}

	person := entities.NewPerson(name, s.stats.Generate())

	// Everyone starts out needing to eat and drink.
	for _, subtype := range []string{"Food", "Drink"} {
		need, err := s.needs.CreateDefault(entities.Physiological, subtype)
		if err != nil {
			return nil, fmt.Errorf("creating baseline need: %w", err)
		}
		person.AddDemand(need)
	}

	return person, nil
}

// sortOrderFromLabels records the permutation that reorders parts into
// ascending label order. The sort is stable, so equal labels keep their
// display order.
func sortOrderFromLabels(labels []string) []int {
	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return labels[order[i]] < labels[order[j]]
	})
	return order
}

// Population generates n persons and returns them sorted by name.
func (s *AssemblerService) Population(n int, culture string) ([]*entities.Person, error) {
	people := make([]*entities.Person, 0, n)
	for i := 0; i < n; i++ {
		person, err := s.Assemble(culture)
		if err != nil {
			return nil, fmt.Errorf("assembling person %d: %w", i+1, err)
		}
		people = append(people, person)
	}

	sort.Slice(people, func(i, j int) bool {
		return people[i].Name.Less(people[j].Name)
	})
	return people, nil
}

// Relate links random pairs of persons as mutual friends with a random bond
// weight. Self-pairs are skipped, so fewer than pairs links may be created.
func (s *AssemblerService) Relate(people []*entities.Person, pairs int) {
	if len(people) < 2 {
		return
	}
	for k := 0; k < pairs; k++ {
		a := people[s.rng.Intn(len(people))]
		b := people[s.rng.Intn(len(people))]
		if a == b {
			continue
		}
		weight := s.rng.Float64()
		now := time.Now()
		a.AddRelationship(entities.Relationship{
			ID:        uuid.New().String(),
			Type:      entities.RelationFriend,
			Weight:    weight,
			From:      a.ID,
			To:        b.ID,
			CreatedAt: now,
		})
		b.AddRelationship(entities.Relationship{
			ID:        uuid.New().String(),
			Type:      entities.RelationFriend,
			Weight:    weight,
			From:      b.ID,
			To:        a.ID,
			CreatedAt: now,
		})
	}
}
