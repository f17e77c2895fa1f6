// Package pacer spaces out the ticks a client pulls from a game.
package pacer

import "time"

// Pacer decides when the next tick of an in-flight reaction may be applied.
// A move seeded by an automated player waits AIDelay before its first tick;
// every later tick waits TickDelay. Moves are told apart by their turn number.
type Pacer struct {
	TickDelay time.Duration
	AIDelay   time.Duration

	turn int
	last time.Time
	wait time.Duration
}

// New returns a pacer with the given delays.
func New(tickDelay, aiDelay time.Duration) *Pacer {
	return &Pacer{TickDelay: tickDelay, AIDelay: aiDelay}
}

// Due reports whether a tick may be applied at now for the move of the given
// turn. A true result starts the wait for the following tick.
func (p *Pacer) Due(now time.Time, turn int, automated bool) bool {
	if turn != p.turn {
		p.turn = turn
		p.last = now
		p.wait = 0
		if automated {
			p.wait = p.AIDelay
		}
	}
	if now.Sub(p.last) < p.wait {
		return false
	}
	p.last = now
	p.wait = p.TickDelay
	return true
}

// Reset forgets the current move, for use after the game is restarted.
func (p *Pacer) Reset() {
	p.turn = 0
	p.wait = 0
}

// SetDelays replaces both delays; the wait already running is kept.
func (p *Pacer) SetDelays(tickDelay, aiDelay time.Duration) {
	p.TickDelay = tickDelay
	p.AIDelay = aiDelay
}
