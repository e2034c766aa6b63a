// Package handid mints sortable identifiers for dealt hands. An ID is a
// UUIDv7 written as 26 characters of Crockford base32, so IDs minted later
// sort after earlier ones.
package handid

import (
	"encoding/binary"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	Length   = 26
)

var ErrInvalidID = errors.New("invalid hand ID")

// Generator mints IDs from a clock and a random source, both injected so a
// seeded table with a mock clock produces the same IDs every run.
type Generator struct {
	clock quartz.Clock
	rng   *rand.Rand
}

// NewGenerator creates a generator
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	return &Generator{clock: clock, rng: rng}
}

// Next returns a new ID
func (g *Generator) Next() string {
	return encode(g.uuid(g.clock.Now()))
}

// 48-bit millisecond timestamp, 4-bit version, 12 random bits, 2-bit
// variant, 62 random bits
func (g *Generator) uuid(now time.Time) [16]byte {
	var id [16]byte
	ms := uint64(now.UnixMilli())
	binary.BigEndian.PutUint64(id[8:], g.rng.Uint64())
	binary.BigEndian.PutUint16(id[6:], uint16(g.rng.Uint32()))
	binary.BigEndian.PutUint16(id[0:], uint16(ms>>32))
	binary.BigEndian.PutUint32(id[2:], uint32(ms))

	id[6] = id[6]&0x0f | 0x70
	id[8] = id[8]&0x3f | 0x80
	return id
}

// encode writes the 128 bits as 130, with two leading zero bits, so the
// first character is always 0-3
func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

// Validate checks an ID's length and alphabet
func Validate(id string) error {
	if len(id) != Length {
		return fmt.Errorf("%w: must be exactly %d characters, got %d", ErrInvalidID, Length, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("%w: first character must be 0-7, got %c", ErrInvalidID, id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("%w: invalid character %c at position %d", ErrInvalidID, c, i)
		}
	}
	return nil
}

// Time returns the millisecond timestamp embedded in an ID
func Time(id string) (time.Time, error) {
	if err := Validate(id); err != nil {
		return time.Time{}, err
	}
	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := uint64(strings.IndexByte(alphabet, id[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	return time.UnixMilli(int64(hi >> 16)), nil
}
