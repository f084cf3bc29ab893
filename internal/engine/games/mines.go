package games

import (
	"math"
	"sync"
	"time"

	"github.com/wagerworks/ecosim/internal/catalog"
	"github.com/wagerworks/ecosim/pkg/rng"
)

// MinesSession is the ephemeral state of one tile-reveal wager: the hazard
// layout is fixed at start and the multiplier grows geometrically with each
// safe reveal. Reveals and settlement go through SessionStore.WithSession,
// which holds mu across the whole check-mutate-destroy sequence; the methods
// below assume that discipline.
type MinesSession struct {
	AccountID uint64
	Bet       int64
	StartedAt time.Time

	// mu, armed and done are owned by the SessionStore. A session stays
	// unarmed until its wager commits and is done once settled or swept.
	mu    sync.Mutex
	armed bool
	done  bool

	gridSize int
	base     float64
	hazards  map[int]struct{}
	revealed map[int]struct{}
}

func newMinesSession(r rng.RNG, p catalog.MinesParams, accountID uint64, bet int64, startedAt time.Time) *MinesSession {
	s := &MinesSession{
		AccountID: accountID,
		Bet:       bet,
		StartedAt: startedAt,
		gridSize:  p.GridSize,
		base:      p.Base,
		hazards:   make(map[int]struct{}, p.Hazards),
		revealed:  map[int]struct{}{},
	}

	// Uniform hazard placement without replacement.
	for len(s.hazards) < p.Hazards {
		s.hazards[r.Intn(p.GridSize)] = struct{}{}
	}

	return s
}

// Reveal uncovers a tile. It reports whether the tile was a hazard; the
// caller ends the session on a hazard hit.
func (s *MinesSession) Reveal(tile int) (hazard bool, err error) {
	if tile < 0 || tile >= s.gridSize {
		return false, ErrTileOutOfRange
	}
	if _, done := s.revealed[tile]; done {
		return false, ErrTileRevealed
	}

	if _, hit := s.hazards[tile]; hit {
		return true, nil
	}

	s.revealed[tile] = struct{}{}

	return false, nil
}

// RevealedCount is the number of safe tiles uncovered so far.
func (s *MinesSession) RevealedCount() int {
	return len(s.revealed)
}

// Multiplier is base^revealedCount.
func (s *MinesSession) Multiplier() float64 {
	return math.Pow(s.base, float64(len(s.revealed)))
}

// Payout is the cash-out value for the current multiplier.
func (s *MinesSession) Payout() int64 {
	return int64(math.Floor(float64(s.Bet) * s.Multiplier()))
}

// HazardTiles lists the hazard positions, for disclosure after the session
// ends.
func (s *MinesSession) HazardTiles() []int {
	out := make([]int, 0, len(s.hazards))
	for t := range s.hazards {
		out = append(out, t)
	}

	return out
}
