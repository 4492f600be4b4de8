// Package game defines the games the casino shell can run.
//
// A game is a GamePlugin: the shell calls Init with the shared
// bets.BetProvider when the player picks the game and Fin when they leave.
// Games never touch chip ledgers; they ask the provider for a bet and
// report the outcome.
//
// # Rounds
//
// SampleGame cycles through Ready, Betting, Playing and back:
//
//	g := game.NewSampleGame("sample", "Sample Game", []string{"main"}, logger)
//	g.Init(provider)
//	_ = g.Begin()      // provider.Start, phase Betting
//	// ...player moves chips and the provider's Finish fires...
//	_ = g.End(true)    // provider.Win(true), phase Ready
//
// A player whose winnings reach zero is left in the Bust phase.
package game
