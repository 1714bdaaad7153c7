package dat

// PagedMapBMP maps BMP code points (0..65535) to dense alphabet IDs.
// It is a two-level page table:
//   - Top[hi] = page index (1..NumPages), or 0 meaning "page absent".
//   - Pages is a flat array of NumPages*256 entries.
//
// Bengali input touches only a handful of pages (Basic Latin, Latin-1,
// General Punctuation, Bengali), so a map stays at a few KB.
type PagedMapBMP struct {
	Top   [256]uint16 // page index (1-based); 0 means none
	Pages []uint16    // flat: NumPages*256
}

// Dense returns the dense alphabet ID for a BMP code point.
// Returns 0 if absent.
func (m *PagedMapBMP) Dense(bmp uint16) uint16 {
	pi := m.Top[bmp>>8]
	if pi == 0 {
		return 0
	}
	return m.Pages[int(pi-1)<<8+int(bmp&0xFF)]
}

// NumPages returns the number of allocated pages.
func (m *PagedMapBMP) NumPages() int { return len(m.Pages) >> 8 }

// Set sets mapping bmp -> dense (dense may be 0 to clear).
func (m *PagedMapBMP) Set(bmp uint16, dense uint16) {
	hi := bmp >> 8
	pi := m.Top[hi]
	if pi == 0 {
		if dense == 0 {
			return
		}
		m.Pages = append(m.Pages, make([]uint16, 256)...)
		pi = uint16(len(m.Pages) >> 8)
		m.Top[hi] = pi
	}
	m.Pages[int(pi-1)<<8+int(bmp&0xFF)] = dense
}
