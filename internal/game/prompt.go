package game

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Prompter asks the user a question and returns the answer
type Prompter interface {
	Prompt(ctx context.Context, question string) (string, error)
}

// LinePrompter reads one line of input per question. A single goroutine owns
// the input stream, so a prompt abandoned by cancellation leaves its line for
// the next one instead of racing a second reader.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer

	start   sync.Once
	lines   chan lineResult
	readErr error
}

// NewLinePrompter creates a prompter over a line-oriented input stream
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		in:    bufio.NewReader(in),
		out:   out,
		lines: make(chan lineResult),
	}
}

type lineResult struct {
	line string
	err  error
}

// readLines feeds lines to Prompt until the input ends. readErr is set before
// the channel is closed.
func (p *LinePrompter) readLines() {
	defer close(p.lines)
	for {
		line, err := p.in.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				p.readErr = err
			}
			if line != "" {
				p.lines <- lineResult{line: line}
			}
			return
		}
		p.lines <- lineResult{line: line}
	}
}

// Prompt writes the question and waits for a line. End of input yields an
// empty answer. Cancelling ctx abandons the wait; the line still arrives for
// the next prompt.
func (p *LinePrompter) Prompt(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-p.lines:
		if !ok {
			if p.readErr != nil {
				return "", fmt.Errorf("read input: %w", p.readErr)
			}
			return "", nil
		}
		return strings.TrimSpace(res.line), nil
	}
}

// IsYes reports whether an answer accepts a draw
func IsYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "yes")
}

// PromptName asks for the player's name, falling back when none is given
func PromptName(ctx context.Context, p Prompter, fallback string) (string, error) {
	name, err := p.Prompt(ctx, "What's your name? ")
	if err != nil {
		return "", err
	}
	if name = strings.TrimSpace(name); name == "" {
		return fallback, nil
	}
	return name, nil
}
