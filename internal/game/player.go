package game

import "fmt"

// Player is a named participant with a vapor dome and a running score
type Player struct {
	Name  string
	Dome  Dome
	score int
}

// NewPlayer creates a player from a sorted hand
func NewPlayer(name string, hand Hand) (*Player, error) {
	dome, err := NewDome(hand)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", name, err)
	}
	return &Player{Name: name, Dome: dome}, nil
}

// Score returns the cumulative score
func (p *Player) Score() int {
	return p.score
}

// AddScore increases the score. Scores never go down.
func (p *Player) AddScore(points int) error {
	if points < 0 {
		return fmt.Errorf("cannot add negative score %d", points)
	}
	p.score += points
	return nil
}

func (p *Player) String() string {
	return fmt.Sprintf("%s has a score of %d", p.Name, p.score)
}
