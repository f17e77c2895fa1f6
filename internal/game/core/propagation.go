package core

import "iter"

// Tick is one synchronized wave of bumps.
type Tick struct {
	Number     int
	Player     int
	Bumped     []Coordinate // in bump order; a coordinate appears once per bump
	Overflowed []Coordinate
	// Captured is set when the acting player owns every cell after this tick.
	Captured bool
	// Final is set when nothing is pending after this tick.
	Final bool
	// Board is a copy of the board after the tick, nil when snapshots are disabled.
	Board *Board
}

// Result summarizes a finished propagation.
type Result struct {
	Ticks     int
	Bumps     int
	Overflows int
	Captured  bool
}

// Propagation resolves a single move into a chain reaction, one tick per Step.
// The pending queue holds arena indices; a cell enqueued twice in the same
// tick is bumped twice.
type Propagation struct {
	board     *Board
	player    int
	pending   []int
	tick      int
	result    Result
	snapshots bool
}

// NewPropagation validates move against b and seeds the pending queue with
// its target. On error b is left untouched.
func NewPropagation(b *Board, move Move) (*Propagation, error) {
	if err := move.Validate(b); err != nil {
		return nil, WrapMoveError(move.Player, move.Target, err)
	}
	return &Propagation{
		board:     b,
		player:    move.Player,
		pending:   []int{b.Idx(move.Target.Row, move.Target.Col)},
		snapshots: true,
	}, nil
}

// SetSnapshots controls whether ticks carry a copy of the board.
func (p *Propagation) SetSnapshots(enabled bool) { p.snapshots = enabled }

func (p *Propagation) Player() int    { return p.player }
func (p *Propagation) Done() bool     { return len(p.pending) == 0 }
func (p *Propagation) Result() Result { return p.result }

// Pending returns the coordinates queued for the next tick.
func (p *Propagation) Pending() []Coordinate {
	coords := make([]Coordinate, len(p.pending))
	for i, idx := range p.pending {
		coords[i] = p.board.Coord(idx)
	}
	return coords
}

// Step applies the next tick. It returns false once the board is stable.
func (p *Propagation) Step() (Tick, bool) {
	if len(p.pending) == 0 {
		return Tick{}, false
	}

	toChange := p.pending
	p.pending = nil
	p.tick++

	tick := Tick{
		Number: p.tick,
		Player: p.player,
		Bumped: make([]Coordinate, 0, len(toChange)),
	}
	for _, idx := range toChange {
		cell := &p.board.C[idx]
		cell.Value++
		cell.Owner = p.player
		tick.Bumped = append(tick.Bumped, cell.Coord())

		if cell.Value > cell.Neighbors {
			cell.Value = 1
			tick.Overflowed = append(tick.Overflowed, cell.Coord())
			p.pending = append(p.pending, p.board.NeighborIndices(idx)...)
		}
	}

	// Once the mover holds every cell further bumps cannot change ownership,
	// and a saturated board would otherwise never settle.
	if p.board.OwnedBy(p.player) == p.board.Size() {
		p.pending = nil
		tick.Captured = true
	}

	tick.Final = len(p.pending) == 0
	if p.snapshots {
		tick.Board = p.board.Clone()
	}

	p.result.Ticks = p.tick
	p.result.Bumps += len(tick.Bumped)
	p.result.Overflows += len(tick.Overflowed)
	p.result.Captured = p.result.Captured || tick.Captured
	return tick, true
}

// Ticks returns the remaining ticks as a lazy sequence. Breaking out of the
// loop leaves the rest of the chain reaction pending.
func (p *Propagation) Ticks() iter.Seq[Tick] {
	return func(yield func(Tick) bool) {
		for {
			tick, ok := p.Step()
			if !ok || !yield(tick) {
				return
			}
		}
	}
}

// Run drains every remaining tick without snapshots and returns the summary.
func (p *Propagation) Run() Result {
	p.snapshots = false
	for !p.Done() {
		p.Step()
	}
	return p.result
}
