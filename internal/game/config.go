package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Defaults applied by DefaultConfig and LoadConfig
const (
	DefaultStartingStack = 1000
	DefaultBigBlindSeat  = 1
	DefaultMaxSeats      = 10
	DefaultEquityTimeout = 2 * time.Second
	MinSeats             = 2
)

// Config describes a table. Blind amounts have no default: a table with an
// unset blind is rejected when it is created.
type Config struct {
	SmallBlind    int
	BigBlind      int
	BigBlindSeat  int // wraps modulo the number of seated players
	StartingStack int
	MaxSeats      int
	EquityTimeout time.Duration
}

// DefaultConfig returns a 10/20 table with 1000-chip stacks
func DefaultConfig() Config {
	return Config{
		SmallBlind:    10,
		BigBlind:      20,
		BigBlindSeat:  DefaultBigBlindSeat,
		StartingStack: DefaultStartingStack,
		MaxSeats:      DefaultMaxSeats,
		EquityTimeout: DefaultEquityTimeout,
	}
}

// configFile is the on-disk shape:
//
//	table {
//	  small_blind    = 10
//	  big_blind      = 20
//	  big_blind_seat = 1
//	  starting_stack = 1000
//	  max_seats      = 8
//	  equity_timeout = "2s"
//	}
type configFile struct {
	Table tableBlock `hcl:"table,block"`
}

type tableBlock struct {
	SmallBlind    int    `hcl:"small_blind,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	BigBlindSeat  *int   `hcl:"big_blind_seat,optional"`
	StartingStack int    `hcl:"starting_stack,optional"`
	MaxSeats      int    `hcl:"max_seats,optional"`
	EquityTimeout string `hcl:"equity_timeout,optional"`
}

// LoadConfig reads table configuration from an HCL file. A missing file
// yields DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(src, filename)
}

// ParseConfig decodes HCL source and applies defaults for omitted values
func ParseConfig(src []byte, filename string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw configFile
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Config{
		SmallBlind:    raw.Table.SmallBlind,
		BigBlind:      raw.Table.BigBlind,
		BigBlindSeat:  DefaultBigBlindSeat,
		StartingStack: raw.Table.StartingStack,
		MaxSeats:      raw.Table.MaxSeats,
		EquityTimeout: DefaultEquityTimeout,
	}
	if raw.Table.BigBlindSeat != nil {
		cfg.BigBlindSeat = *raw.Table.BigBlindSeat
	}
	if cfg.StartingStack == 0 {
		cfg.StartingStack = DefaultStartingStack
	}
	if cfg.MaxSeats == 0 {
		cfg.MaxSeats = DefaultMaxSeats
	}
	if raw.Table.EquityTimeout != "" {
		d, err := time.ParseDuration(raw.Table.EquityTimeout)
		if err != nil {
			return Config{}, fmt.Errorf("%w: equity_timeout: %v", ErrInvalidConfig, err)
		}
		cfg.EquityTimeout = d
	}

	return cfg, nil
}

// Validate checks the configuration on its own. Seat counts are checked
// against MaxSeats when players are seated.
func (c Config) Validate() error {
	if c.SmallBlind <= 0 || c.BigBlind <= 0 {
		return fmt.Errorf("%w: %w: small %d, big %d", ErrInvalidConfig, ErrMissingBlindConfiguration, c.SmallBlind, c.BigBlind)
	}
	if c.BigBlind < c.SmallBlind {
		return fmt.Errorf("%w: big blind %d is less than small blind %d", ErrInvalidConfig, c.BigBlind, c.SmallBlind)
	}
	if c.BigBlindSeat < 0 {
		return fmt.Errorf("%w: big blind seat %d is negative", ErrInvalidConfig, c.BigBlindSeat)
	}
	if c.StartingStack < c.BigBlind {
		return fmt.Errorf("%w: starting stack %d cannot cover the big blind", ErrInvalidConfig, c.StartingStack)
	}
	if c.MaxSeats < MinSeats || c.MaxSeats > DefaultMaxSeats {
		return fmt.Errorf("%w: max seats must be between %d and %d, got %d", ErrInvalidConfig, MinSeats, DefaultMaxSeats, c.MaxSeats)
	}
	if c.EquityTimeout < 0 {
		return fmt.Errorf("%w: negative equity timeout", ErrInvalidConfig)
	}
	return nil
}
