// Package game deals a hand of Texas Hold'em at a single table.
//
// The main type is GameMaster, which owns a Table and moves it through the
// phases of a hand: blinds, hole cards, flop, turn, river and showdown.
// Betting is not modelled; DecisionEvent is the hook a policy would use.
//
// # Basic Usage
//
//	gm, err := game.CreateTable(game.DefaultPlayers(3), game.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	if err := game.RunToFlop(gm); err != nil {
//	    return err
//	}
//	_ = game.DealNextCommunityCard(gm) // turn
//	_ = game.DealNextCommunityCard(gm) // river
//	result, err := gm.Showdown()
//
// # Deterministic Testing
//
// All randomness comes from an injected generator and all timestamps from an
// injected clock:
//
//	gm, err := game.CreateTable(players, cfg,
//	    game.WithSeed(42),
//	    game.WithClock(quartz.NewMock(t)))
//
// Hand IDs are minted from the same generator and clock, so they repeat too.
// A pre-arranged deck can be supplied with WithDeck. NewTestMaster builds a
// seeded table with sensible defaults.
//
// # Architecture
//
//   - Table: the single roster, the deck, the board and past boards
//   - Player: hole cards, the evaluation hand and the last rank
//   - EventBus: synchronous delivery of phase, blind, skip and equity events
//   - EquityEstimator: optional advisory equity on the flop
package game
