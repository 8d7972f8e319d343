// Package game implements the Jacks or Better credit loop.
//
// The main type is Engine, which walks one session through its phases:
//
//	AwaitingBet -> RoundStart -> Dealt -> HoldSelection -> FinalHand
//	    -> (Gamble) -> Payout -> (RoundStart | GameOver)
//
// All player interaction goes through Interface, so the same engine drives
// the line-based console, the full-screen TUI and scripted test doubles.
//
// # Deterministic Testing
//
// The engine takes its random source explicitly. Use randutil.New with a
// fixed seed, or WithDeckFactory to hand it stacked decks:
//
//	e := game.NewEngine(ui, randutil.New(42), logger,
//	    game.WithStartingCredits(100),
//	    game.WithDeckFactory(func() *deck.Deck { return deck.NewFromCards(cards) }))
//	summary, err := e.Run(ctx)
package game
