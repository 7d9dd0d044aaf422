package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/staysaturated/internal/deck"
)

// State is a step of the session state machine
type State int

const (
	AwaitingDrawDecision State = iota
	Scoring
	Terminal
)

func (s State) String() string {
	switch s {
	case AwaitingDrawDecision:
		return "awaiting-draw-decision"
	case Scoring:
		return "scoring"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Outcome is the result of a session from the user's point of view
type Outcome int

const (
	Undecided Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "undecided"
	}
}

// DrawPrompt is the question asked before each round
const DrawPrompt = "Would you like to draw a card? (Yes or No): "

// Result summarises a finished session
type Result struct {
	Outcome       Outcome
	UserScore     int
	ComputerScore int

	// Drew is false when the user declined to draw
	Drew         bool
	UserCard     deck.Card
	ComputerCard deck.Card

	// Cause is the card cited for ending the game
	Cause          deck.Card
	ComputerCaused bool

	Rounds     int
	StartedAt  time.Time
	FinishedAt time.Time
	Elapsed    time.Duration
}

// SessionOptions configures a session. User, Computer, Pool and Prompter are
// required.
type SessionOptions struct {
	User     *Player
	Computer *Player
	Pool     *deck.DrawQueue
	Prompter Prompter
	Renderer *Renderer
	Logger   *log.Logger
	Clock    quartz.Clock
}

// Session runs a single game between the user and the computer
type Session struct {
	user     *Player
	computer *Player
	pool     *deck.DrawQueue
	prompter Prompter
	renderer *Renderer
	logger   *log.Logger
	clock    quartz.Clock
	state    State
}

// NewSession creates a session ready to prompt for the first draw
func NewSession(opts SessionOptions) (*Session, error) {
	switch {
	case opts.User == nil:
		return nil, errors.New("session requires a user player")
	case opts.Computer == nil:
		return nil, errors.New("session requires a computer player")
	case opts.Pool == nil:
		return nil, errors.New("session requires a draw pool")
	case opts.Prompter == nil:
		return nil, errors.New("session requires a prompter")
	}

	s := &Session{
		user:     opts.User,
		computer: opts.Computer,
		pool:     opts.Pool,
		prompter: opts.Prompter,
		renderer: opts.Renderer,
		logger:   opts.Logger,
		clock:    opts.Clock,
		state:    AwaitingDrawDecision,
	}
	if s.renderer == nil {
		s.renderer = NewRenderer(io.Discard, true)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	s.logger = s.logger.WithPrefix("session")
	if s.clock == nil {
		s.clock = quartz.NewReal()
	}
	return s, nil
}

// State returns the current state of the session
func (s *Session) State() State {
	return s.state
}

// Play runs the session to completion. A session can only be played once.
func (s *Session) Play(ctx context.Context) (Result, error) {
	if s.state != AwaitingDrawDecision {
		return Result{}, fmt.Errorf("session already %s", s.state)
	}

	res := Result{StartedAt: s.clock.Now()}

	s.renderer.ShowDome(s.user.Dome)
	answer, err := s.prompter.Prompt(ctx, DrawPrompt)
	if err != nil {
		return Result{}, err
	}
	s.logger.Debug("Draw decision", "answer", answer)

	if IsYes(answer) {
		s.state = Scoring
		if err := s.playRound(&res); err != nil {
			return Result{}, err
		}
	}

	s.state = Terminal
	res.UserScore = s.user.Score()
	res.ComputerScore = s.computer.Score()
	if res.UserScore > res.ComputerScore {
		res.Outcome = Won
	} else {
		res.Outcome = Lost
	}
	res.FinishedAt = s.clock.Now()
	res.Elapsed = res.FinishedAt.Sub(res.StartedAt)

	s.renderer.ShowResult(res)
	s.logger.Info("Session finished",
		"outcome", res.Outcome,
		"user_score", res.UserScore,
		"computer_score", res.ComputerScore,
		"elapsed", res.Elapsed)
	return res, nil
}

// playRound draws one card each from the shared pool, user first, scores
// them and decides which card ends the game.
func (s *Session) playRound(res *Result) error {
	userCard, ok := s.pool.Dequeue()
	if !ok {
		return &deck.InsufficientDataError{Queue: "draw pool", Need: "drawing the user's card"}
	}
	computerCard, ok := s.pool.Dequeue()
	if !ok {
		return &deck.InsufficientDataError{Queue: "draw pool", Need: "drawing the computer's card"}
	}
	res.Drew = true
	res.Rounds++
	res.UserCard = userCard
	res.ComputerCard = computerCard
	s.renderer.ShowDraws(userCard, computerCard)

	userPoints := s.user.Dome.Score(userCard)
	computerPoints := s.computer.Dome.Score(computerCard)
	if err := s.user.AddScore(userPoints); err != nil {
		return err
	}
	if err := s.computer.AddScore(computerPoints); err != nil {
		return err
	}
	if userPoints > 0 {
		s.renderer.ShowScores(s.user, s.computer)
	}

	s.logger.Info("Round scored",
		"user_card", userCard,
		"user_points", userPoints,
		"computer_card", computerCard,
		"computer_points", computerPoints,
		"pool_remaining", s.pool.Len())

	// Only the computer's card is checked against its dome. When it is in
	// range the user's card is cited whether or not it was outside.
	if !s.computer.Dome.Contains(computerCard) {
		res.Cause = computerCard
		res.ComputerCaused = true
	} else {
		res.Cause = userCard
	}
	s.renderer.ShowCause(res.Cause, res.ComputerCaused)
	return nil
}
