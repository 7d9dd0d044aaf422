// Package game implements the Stay Saturated card game.
//
// Each participant holds a five-card hand of vapor-pressure readings. Sorted
// ascending, the hand describes a vapor dome:
//
//	vf < two-phase low < critical point < two-phase high < vg
//
// A round draws one card per participant from a shared pool and scores it
// against that participant's own dome: 10 points inside the two-phase region,
// 5 points in the bands between the dome edges and the two-phase region.
//
// # Basic Usage
//
//	deal, err := game.Setup(src, randutil.New(42), game.DefaultHandSize)
//	user, _ := game.NewPlayer("Annie", deal.User)
//	bot, _ := game.NewPlayer("bot", deal.Computer)
//	s, err := game.NewSession(game.SessionOptions{
//	    User:     user,
//	    Computer: bot,
//	    Pool:     deal.Pool,
//	    Prompter: game.NewLinePrompter(os.Stdin, os.Stdout),
//	    Renderer: game.NewRenderer(os.Stdout, false),
//	})
//	result, err := s.Play(ctx)
//
// # Deterministic Testing
//
// Setup takes the generator used for every shuffle, so a fixed seed replays
// the same deal. Sessions can also be built directly from hand-picked hands
// and a deck.NewDrawQueue pool.
package game
