package dat

import (
	"errors"
	"fmt"
	"sort"
)

// ErrFrozen is returned when keys are inserted into a frozen builder.
var ErrFrozen = errors.New("dat: builder is frozen")

type buildNode struct {
	state    uint32
	value    int32
	children map[uint16]*buildNode
}

// Builder collects keys in a mutable tree and lays them out as a DAT on
// Freeze. Keys must consist of BMP runes.
type Builder struct {
	root        *buildNode
	runeToDense map[rune]uint16
	nextDenseID uint16
	keys        int
	compiled    *DAT
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		root:        newBuildNode(),
		runeToDense: make(map[rune]uint16),
		compiled:    &DAT{Root: 1},
	}
}

func newBuildNode() *buildNode {
	return &buildNode{value: NoValue, children: make(map[uint16]*buildNode)}
}

// Len returns the number of distinct keys inserted.
func (b *Builder) Len() int { return b.keys }

// Insert stores value for key, replacing a previous value for the same key.
func (b *Builder) Insert(key string, value int32) error {
	if b.root == nil {
		return ErrFrozen
	}
	if key == "" {
		return errors.New("dat: empty key")
	}
	if value == NoValue {
		return fmt.Errorf("dat: reserved value %d for key %q", value, key)
	}
	n := b.root
	for _, r := range key {
		c, err := b.dense(r)
		if err != nil {
			return fmt.Errorf("dat: key %q: %w", key, err)
		}
		child := n.children[c]
		if child == nil {
			child = newBuildNode()
			n.children[c] = child
		}
		n = child
	}
	if n.value == NoValue {
		b.keys++
	}
	n.value = value
	return nil
}

// Get returns the value currently stored for key.
func (b *Builder) Get(key string) (int32, bool) {
	if b.root == nil {
		return b.compiled.Lookup(key)
	}
	n := b.root
	for _, r := range key {
		c, ok := b.runeToDense[r]
		if !ok {
			return NoValue, false
		}
		if n = n.children[c]; n == nil {
			return NoValue, false
		}
	}
	return n.value, n.value != NoValue && n != b.root
}

func (b *Builder) dense(r rune) (uint16, error) {
	if r < 0 || r > 0xFFFF {
		return 0, fmt.Errorf("rune %U outside the BMP", r)
	}
	if c, ok := b.runeToDense[r]; ok {
		return c, nil
	}
	if b.nextDenseID == ^uint16(0) {
		return 0, errors.New("alphabet exhausted")
	}
	b.nextDenseID++
	b.runeToDense[r] = b.nextDenseID
	b.compiled.MapPaged.Set(uint16(r), b.nextDenseID)
	return b.nextDenseID, nil
}

// Freeze lays out the collected keys as a double-array and returns it.
// The builder drops its construction state; subsequent calls return the
// same DAT.
func (b *Builder) Freeze() *DAT {
	if b.root == nil {
		return b.compiled
	}
	d := b.compiled
	d.Sigma = b.nextDenseID
	d.Base = make([]int32, int(d.Root)+1)
	d.Check = make([]int32, int(d.Root)+1)
	d.Value = []int32{NoValue, NoValue}
	b.root.state = d.Root
	queue := []*buildNode{b.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		d.Value[n.state] = n.value
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findBase(d.Check, labels)
		ensureIndex(d, base+int(labels[len(labels)-1]))
		d.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			d.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	d.Value[d.Root] = NoValue
	b.root = nil
	b.runeToDense = nil
	tracer().Debugf("dat frozen: keys=%d states=%d sigma=%d", b.keys, d.NStates(), d.Sigma)
	return d
}

func sortedLabels(children map[uint16]*buildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findBase returns the first base for which all label slots are free.
// Slot 1 is the root and never free.
func findBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t == 1 || (t < len(check) && check[t] != 0) {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureIndex(d *DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
	for range grow {
		d.Value = append(d.Value, NoValue)
	}
}
