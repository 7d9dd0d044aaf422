package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/staysaturated/internal/deck"
)

// DisplayStyles contains styling for game output
type DisplayStyles struct {
	Header  lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Draw    lipgloss.Style
	Score   lipgloss.Style
	Warning lipgloss.Style
	Win     lipgloss.Style
	Loss    lipgloss.Style
}

// NewDisplayStyles creates the styles bound to a lipgloss renderer
func NewDisplayStyles(r *lipgloss.Renderer) *DisplayStyles {
	return &DisplayStyles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 2).
			Bold(true),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Value: r.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Draw: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Score: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Loss: r.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true),
	}
}

// Renderer writes human readable game output
type Renderer struct {
	w      io.Writer
	styles *DisplayStyles
}

// NewRenderer creates a renderer writing to w. With noColor set the ASCII
// profile is forced, so styles render as plain text.
func NewRenderer(w io.Writer, noColor bool) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if noColor {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:      w,
		styles: NewDisplayStyles(lr),
	}
}

func (r *Renderer) line(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

// Welcome prints the opening banner
func (r *Renderer) Welcome() {
	r.line("%s", r.styles.Header.Render("Welcome to Stay Saturated!"))
}

// Greet welcomes the named player
func (r *Renderer) Greet(name string) {
	r.line("Let's play %s!", name)
}

// ShowDome prints the user's dome boundaries
func (r *Renderer) ShowDome(d Dome) {
	r.line("")
	r.line("Your vapor dome is:")
	rows := []struct {
		label string
		card  deck.Card
	}{
		{"Vf:", d.VF},
		{"Two-phase low:", d.TwoPhaseLow},
		{"Critical point:", d.CriticalPoint},
		{"Two-phase high:", d.TwoPhaseHigh},
		{"Vg:", d.VG},
	}
	for _, row := range rows {
		r.line("   %s %s", r.styles.Label.Render(row.label), r.styles.Value.Render(row.card.String()))
	}
	r.line("")
}

// ShowDraws prints the cards drawn this round
func (r *Renderer) ShowDraws(user, computer deck.Card) {
	r.line("")
	r.line("   You drew: %s", r.styles.Draw.Render(user.String()))
	r.line("   The computer drew: %s", r.styles.Draw.Render(computer.String()))
	r.line("")
}

// ShowScores prints both running scores
func (r *Renderer) ShowScores(user, computer *Player) {
	r.line("   Your current score is %s", r.styles.Score.Render(fmt.Sprint(user.Score())))
	r.line("   The computer's current score is %s", r.styles.Score.Render(fmt.Sprint(computer.Score())))
}

// ShowCause prints the card that ended the game
func (r *Renderer) ShowCause(card deck.Card, computerCaused bool) {
	if computerCaused {
		r.line("   %s", r.styles.Warning.Render(card.String()+" is outside the vapor dome."))
		return
	}
	r.line("   %s", r.styles.Warning.Render(card.String()+" is outside the vapor dome. You are not saturated"))
}

// ShowResult prints the final scores and outcome
func (r *Renderer) ShowResult(res Result) {
	if res.Drew {
		r.line("   Your final score is %s", r.styles.Score.Render(fmt.Sprint(res.UserScore)))
		r.line("   The computer's final score is %s", r.styles.Score.Render(fmt.Sprint(res.ComputerScore)))
	} else {
		r.line("   Your score is: %s", r.styles.Score.Render(fmt.Sprint(res.UserScore)))
		r.line("   The computer's score is %s", r.styles.Score.Render(fmt.Sprint(res.ComputerScore)))
	}

	if res.Outcome == Won {
		r.line("   %s", r.styles.Win.Render("You won!"))
	} else {
		r.line("   %s", r.styles.Loss.Render("You lost!"))
	}
	r.line("")
}
