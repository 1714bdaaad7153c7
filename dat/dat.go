// Package dat implements a frozen double-array trie over BMP runes.
//
// Tries are assembled with a Builder and frozen into a DAT, which is
// immutable and safe for concurrent lookups.
package dat

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'avro.dat'
func tracer() tracing.Trace {
	return tracing.Select("avro.dat")
}

// NoValue marks states without a payload.
const NoValue int32 = -1

// DAT is a frozen double-array trie for rune keys.
//   - Nodes/states are indices into Base/Check (0 is unused; Root is 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// Payloads:
//   - Value[s] holds the payload of terminal state s, or NoValue for
//     inner states.
//
// Mapping:
//   - MapPaged maps BMP code points to dense alphabet IDs.
//     0 means "not part of the key alphabet".
type DAT struct {
	// Root state index (always 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Value holds the payload for terminal states.
	Value []int32 // len == N

	// MapPaged maps BMP code points to dense IDs [0..Sigma].
	MapPaged PagedMapBMP
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a rune to a dense alphabet ID.
// Returns 0 if the rune is not in the alphabet.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.MapPaged.Dense(uint16(r))
}

// Payload returns the value stored at state s.
func (d *DAT) Payload(s uint32) (int32, bool) {
	if int(s) >= len(d.Value) {
		return NoValue, false
	}
	v := d.Value[s]
	return v, v != NoValue
}

// Lookup returns the payload of an exact key.
func (d *DAT) Lookup(key string) (int32, bool) {
	if d == nil || key == "" {
		return NoValue, false
	}
	state := d.Root
	for _, r := range key {
		next, ok := d.Transition(state, d.Dense(r))
		if !ok {
			return NoValue, false
		}
		state = next
	}
	return d.Payload(state)
}

// LongestPrefix walks input starting at position at and returns the payload
// of the deepest terminal state passed, together with the number of runes
// consumed to reach it. n is 0 if no key is a prefix of input[at:].
func (d *DAT) LongestPrefix(input []rune, at int) (value int32, n int) {
	value = NoValue
	if d == nil || at < 0 {
		return
	}
	state := d.Root
	for i := at; i < len(input); i++ {
		next, ok := d.Transition(state, d.Dense(input[i]))
		if !ok {
			break
		}
		state = next
		if v, ok := d.Payload(state); ok {
			value, n = v, i-at+1
		}
	}
	return
}

// Used returns the number of occupied slots, including the root.
func (d *DAT) Used() int {
	used := 0
	for i := range d.Check {
		if i == int(d.Root) || d.Check[i] != 0 {
			used++
		}
	}
	return used
}
