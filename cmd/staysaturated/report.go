package main

import (
	"time"

	"github.com/lox/staysaturated/internal/fileutil"
	"github.com/lox/staysaturated/internal/game"
)

// report is the JSON summary written by --result-file
type report struct {
	Player         string    `json:"player"`
	Computer       string    `json:"computer"`
	Seed           int64     `json:"seed"`
	Outcome        string    `json:"outcome"`
	UserScore      int       `json:"user_score"`
	ComputerScore  int       `json:"computer_score"`
	Drew           bool      `json:"drew"`
	UserCard       *float64  `json:"user_card,omitempty"`
	ComputerCard   *float64  `json:"computer_card,omitempty"`
	Cause          *float64  `json:"cause,omitempty"`
	ComputerCaused bool      `json:"computer_caused"`
	FinishedAt     time.Time `json:"finished_at"`
	ElapsedMS      int64     `json:"elapsed_ms"`
}

func newReport(user, computer *game.Player, seed int64, res game.Result) report {
	r := report{
		Player:         user.Name,
		Computer:       computer.Name,
		Seed:           seed,
		Outcome:        res.Outcome.String(),
		UserScore:      res.UserScore,
		ComputerScore:  res.ComputerScore,
		Drew:           res.Drew,
		ComputerCaused: res.ComputerCaused,
		FinishedAt:     res.FinishedAt,
		ElapsedMS:      res.Elapsed.Milliseconds(),
	}
	if res.Drew {
		userCard, computerCard, cause := res.UserCard.Value, res.ComputerCard.Value, res.Cause.Value
		r.UserCard, r.ComputerCard, r.Cause = &userCard, &computerCard, &cause
	}
	return r
}

func writeReport(path string, r report) error {
	return fileutil.WriteJSONAtomic(path, r, 0o644)
}
