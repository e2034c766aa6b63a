package game

import (
	"io"

	"github.com/charmbracelet/log"
)

// TestMasterOption configures test table creation
type TestMasterOption func(*testMasterBuilder)

type testMasterBuilder struct {
	seed    int64
	config  Config
	players []string
	opts    []Option
}

// Test table options
func WithTestSeed(seed int64) TestMasterOption {
	return func(b *testMasterBuilder) { b.seed = seed }
}

func WithTestBlinds(small, big int) TestMasterOption {
	return func(b *testMasterBuilder) {
		b.config.SmallBlind = small
		b.config.BigBlind = big
	}
}

func WithTestBigBlindSeat(seat int) TestMasterOption {
	return func(b *testMasterBuilder) { b.config.BigBlindSeat = seat }
}

func WithTestStack(chips int) TestMasterOption {
	return func(b *testMasterBuilder) { b.config.StartingStack = chips }
}

func WithTestPlayers(names ...string) TestMasterOption {
	return func(b *testMasterBuilder) { b.players = names }
}

// WithTestOptions passes GameMaster options through, after the defaults
func WithTestOptions(opts ...Option) TestMasterOption {
	return func(b *testMasterBuilder) { b.opts = append(b.opts, opts...) }
}

// NewTestMaster creates a seeded 10/20 table with a discarding logger. It
// panics if the table cannot be created, so tests fail loudly on bad setup.
func NewTestMaster(opts ...TestMasterOption) *GameMaster {
	builder := &testMasterBuilder{
		seed:    42,
		config:  DefaultConfig(),
		players: []string{"Alice", "Bob", "Charlie", "Diana"},
	}

	for _, opt := range opts {
		opt(builder)
	}

	masterOpts := append([]Option{
		WithSeed(builder.seed),
		WithLogger(log.New(io.Discard)),
	}, builder.opts...)

	gm, err := CreateTable(builder.players, builder.config, masterOpts...)
	if err != nil {
		panic(err)
	}
	return gm
}

// Convenience functions for common scenarios
func HeadsUpMaster(opts ...TestMasterOption) *GameMaster {
	return NewTestMaster(append([]TestMasterOption{WithTestPlayers("Alice", "Bob")}, opts...)...)
}

func SixMaxMaster(opts ...TestMasterOption) *GameMaster {
	return NewTestMaster(append([]TestMasterOption{
		WithTestPlayers("Alice", "Bob", "Charlie", "Diana", "Eve", "Frank"),
	}, opts...)...)
}
