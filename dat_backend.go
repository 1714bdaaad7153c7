package avro

import (
	"fmt"

	"github.com/npillmayer/avro/dat"
)

type datBackend struct {
	builder  *dat.Builder
	compiled *dat.DAT
	keys     int
}

func newDATBackend() *datBackend {
	return &datBackend{builder: dat.NewBuilder()}
}

func mustNewDATBackend() patternIndex {
	return newDATBackend()
}

func (db *datBackend) Insert(key string, slot int) error {
	if db.compiled != nil {
		return dat.ErrFrozen
	}
	return db.builder.Insert(key, int32(slot))
}

func (db *datBackend) Slot(key string) (int, bool) {
	var v int32
	var ok bool
	if db.compiled != nil {
		v, ok = db.compiled.Lookup(key)
	} else {
		v, ok = db.builder.Get(key)
	}
	return int(v), ok
}

func (db *datBackend) Freeze() {
	if db.compiled != nil {
		return
	}
	db.keys = db.builder.Len()
	db.compiled = db.builder.Freeze()
	db.builder = nil
}

// LongestMatch returns the slot stored for the longest key which is a
// prefix of input[at:], or length 0.
func (db *datBackend) LongestMatch(input []rune, at int) (int, int) {
	assert(db.compiled != nil, "pattern index used before freeze")
	v, n := db.compiled.LongestPrefix(input, at)
	if n == 0 {
		return -1, 0
	}
	return int(v), n
}

func (db *datBackend) String() string {
	if db.compiled == nil {
		return fmt.Sprintf("DAT(keys=%d,frozen=false)", db.builder.Len())
	}
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=true)", db.compiled.NStates(), db.compiled.Sigma)
}

func (db *datBackend) Stats() patternTrieStats {
	stats := patternTrieStats{Backend: "dat", Keys: db.keys}
	if db.compiled == nil {
		stats.Keys = db.builder.Len()
		return stats
	}
	stats.TotalSlots = db.compiled.NStates()
	stats.UsedSlots = db.compiled.Used()
	stats.Sigma = int(db.compiled.Sigma)
	return stats
}
