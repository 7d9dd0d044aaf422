package game

import (
	"context"

	"github.com/lox/staysaturated/internal/deck"
)

// ScriptedPrompter answers prompts from a fixed list, then with empty
// answers. Used by tests to drive sessions without a terminal.
type ScriptedPrompter struct {
	Answers  []string
	Asked    []string
	OnPrompt func(question string)
}

// Prompt returns the next scripted answer
func (p *ScriptedPrompter) Prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.Asked = append(p.Asked, question)
	if p.OnPrompt != nil {
		p.OnPrompt(question)
	}
	if len(p.Answers) == 0 {
		return "", nil
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// HandOf builds a hand from numeric values
func HandOf(values ...float64) Hand {
	return Hand(deck.Cards(values...))
}
