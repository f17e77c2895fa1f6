package core

import (
	"fmt"
	"strings"
)

// MaxPlayers is the largest roster a game accepts.
const MaxPlayers = 4

// Color identifies a player's side.
type Color int

const (
	Green Color = iota
	Red
	Yellow
	Blue
)

var colorNames = [...]string{"green", "red", "yellow", "blue"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return fmt.Sprintf("color(%d)", int(c))
	}
	return colorNames[c]
}

func (c Color) IsValid() bool { return c >= Green && c <= Blue }

// ParseColor converts a color name (case-insensitive) to a Color.
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Player is one contestant. Score is derived from board ownership and
// recomputed by the turn controller.
type Player struct {
	Name      string
	Color     Color
	Automated bool
	Score     int
}

// NewPlayer creates a player with a zero score.
func NewPlayer(name string, color Color, automated bool) Player {
	return Player{Name: name, Color: color, Automated: automated}
}

// Equal reports whether two players share name and color.
func (p Player) Equal(other Player) bool {
	return p.Name == other.Name && p.Color == other.Color
}

func (p Player) String() string {
	kind := "human"
	if p.Automated {
		kind = "ai"
	}
	return fmt.Sprintf("%s(%s,%s)", p.Name, p.Color, kind)
}

// DefaultPlayers is the two-seat roster a fresh install starts with.
func DefaultPlayers() []Player {
	return []Player{
		NewPlayer("Green", Green, false),
		NewPlayer("Red", Red, true),
	}
}

// IndexOf returns the roster index of the player equal to p, or -1.
func IndexOf(players []Player, p Player) int {
	for i := range players {
		if players[i].Equal(p) {
			return i
		}
	}
	return -1
}

// ValidateRoster checks roster size, identities and that someone can start the game.
func ValidateRoster(players []Player) error {
	if len(players) == 0 {
		return NewConfigError("players", "roster is empty")
	}
	if len(players) > MaxPlayers {
		return NewConfigError("players", "%d players exceeds the maximum of %d", len(players), MaxPlayers)
	}
	hasHuman := false
	for i, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return NewConfigError("players", "player %d has no name", i)
		}
		if !p.Color.IsValid() {
			return NewConfigError("players", "player %d has invalid color %s", i, p.Color)
		}
		if j := IndexOf(players[:i], p); j >= 0 {
			return NewConfigError("players", "players %d and %d share identity %s", j, i, p)
		}
		if !p.Automated {
			hasHuman = true
		}
	}
	if !hasHuman {
		return NewConfigError("players", "at least one human player is required")
	}
	return nil
}
