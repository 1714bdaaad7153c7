package avro

type patternTrieStats struct {
	Backend    string
	Keys       int
	UsedSlots  int
	TotalSlots int
	Sigma      int
}

func (s patternTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// patternIndex is the internal backend abstraction mapping keys (pattern
// tokens or replacements) to slots of the pattern table.
//
// Insert and Slot are valid before Freeze, LongestMatch after it.
type patternIndex interface {
	Insert(key string, slot int) error
	Slot(key string) (int, bool)
	Freeze()
	LongestMatch(input []rune, at int) (slot, length int)
	Stats() patternTrieStats
}
