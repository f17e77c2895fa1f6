package ai

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mitchelldurbincs/DiceOff/internal/game/core"
	"github.com/mitchelldurbincs/DiceOff/internal/game/rules"
	"github.com/rs/zerolog"
)

// Heuristic weights.
const (
	GrowScore      = 1   // closure cell that is unclaimed or already ours
	CaptureScore   = 10  // closure cell taken from an opponent
	ExposedPenalty = -50 // stronger foreign neighbor next to the candidate
	ThreatScore    = 10  // weaker or equal opponent neighbor next to the candidate

	DefaultFortifyChance = 0.5
)

// Selector picks moves for automated players by scoring the chain reaction
// each legal cell would trigger.
type Selector struct {
	rng           *rand.Rand
	fortifyChance float64
	logger        zerolog.Logger
}

// Option configures a Selector
type Option func(*Selector)

// WithRNG makes tie-breaking reproducible.
func WithRNG(rng *rand.Rand) Option {
	return func(s *Selector) { s.rng = rng }
}

// WithFortifyChance sets the probability of preferring the strongest tied cell.
func WithFortifyChance(p float64) Option {
	return func(s *Selector) { s.fortifyChance = p }
}

// WithLogger attaches a logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Selector) { s.logger = logger }
}

// NewSelector creates a selector with a time-seeded RNG unless WithRNG is given.
func NewSelector(opts ...Option) *Selector {
	s := &Selector{
		fortifyChance: DefaultFortifyChance,
		logger:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.logger = s.logger.With().Str("component", "AISelector").Logger()
	return s
}

// SelectMove returns the cell the player should bump.
func (s *Selector) SelectMove(b *core.Board, player int) (core.Coordinate, error) {
	best, score := BestCandidates(b, player)
	if len(best) == 0 {
		s.logger.Debug().Int("player", player).Msg("No legal cells left")
		return core.Coordinate{}, fmt.Errorf("player %d: %w", player, core.ErrNoMovesAvailable)
	}

	pool := best
	fortify := s.rng.Float64() < s.fortifyChance
	if fortify {
		pool = strongest(b, best)
	}
	choice := b.Coord(pool[s.rng.Intn(len(pool))])

	s.logger.Debug().
		Int("player", player).
		Int("score", score).
		Int("tied", len(best)).
		Bool("fortify", fortify).
		Str("choice", choice.String()).
		Msg("AI move selected")
	return choice, nil
}

// Candidates returns the arena indices of every cell player may bump.
func Candidates(b *core.Board, player int) []int {
	return rules.LegalCells(b, player)
}

// Closure returns the arena indices a bump on start would reach: start itself
// plus, transitively, the neighbors of every reached cell one bump away from
// overflowing. Each cell is visited once; the board is only read.
func Closure(b *core.Board, start int) []int {
	visited := make(map[int]struct{})
	var order []int

	stack := []int{start}
	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, seen := visited[idx]; seen {
			continue
		}
		visited[idx] = struct{}{}
		order = append(order, idx)

		if b.C[idx].WouldOverflow() {
			neighbors := b.NeighborIndices(idx)
			for i := len(neighbors) - 1; i >= 0; i-- {
				if _, seen := visited[neighbors[i]]; !seen {
					stack = append(stack, neighbors[i])
				}
			}
		}
	}
	return order
}

// Score evaluates bumping the cell at idx for player.
func Score(b *core.Board, idx, player int) int {
	score := 0
	for _, c := range Closure(b, idx) {
		cell := &b.C[c]
		if cell.CanBeBumpedBy(player) {
			score += GrowScore
		} else {
			score += CaptureScore
		}
	}

	candidate := &b.C[idx]
	for _, n := range b.NeighborIndices(idx) {
		neighbor := &b.C[n]
		if neighbor.IsOwnedBy(player) {
			continue
		}
		if neighbor.Value > candidate.Value {
			score += ExposedPenalty
		} else if !neighbor.IsUnclaimed() {
			score += ThreatScore
		}
	}
	return score
}

// BestCandidates returns every legal cell sharing the highest score, in board order.
func BestCandidates(b *core.Board, player int) ([]int, int) {
	var best []int
	bestScore := 0
	for _, idx := range Candidates(b, player) {
		score := Score(b, idx, player)
		switch {
		case len(best) == 0 || score > bestScore:
			bestScore = score
			best = append(best[:0], idx)
		case score == bestScore:
			best = append(best, idx)
		}
	}
	return best, bestScore
}

// strongest keeps the candidates with the highest current value.
func strongest(b *core.Board, candidates []int) []int {
	var result []int
	highest := 0
	for _, idx := range candidates {
		v := b.C[idx].Value
		switch {
		case v > highest:
			highest = v
			result = append(result[:0], idx)
		case v == highest:
			result = append(result, idx)
		}
	}
	return result
}
