package bijoy

const (
	candrabindu = 'ঁ' // ঁ
	eKar        = 'ে' // ে
	aaKar       = 'া' // া
	auLength    = 'ৗ' // ৗ
	oKar        = 'ো' // ো
	auKar       = 'ৌ' // ৌ
)

// clusterEnd returns the end of the consonant cluster C(্C)* starting at
// in[i], which must be a consonant.
func (rc *runeClasses) clusterEnd(in []rune, i int) int {
	end := i + 1
	for end+1 < len(in) && in[end] == rc.halant && rc.banjonborno[in[end+1]] {
		end += 2
	}
	return end
}

// clusterStart returns the start of the consonant cluster ending at
// in[end-1], which must be a consonant.
func (rc *runeClasses) clusterStart(in []rune, end int) int {
	start := end - 1
	for start-2 >= 0 && in[start-1] == rc.halant && rc.banjonborno[in[start-2]] {
		start -= 2
	}
	return start
}

// isReph tells if in[i] starts a reph: ra + halant, not itself part of a
// cluster, followed by a consonant.
func (rc *runeClasses) isReph(in []rune, i int) bool {
	return in[i] == ra && i+2 < len(in) && in[i+1] == rc.halant &&
		rc.banjonborno[in[i+2]] && (i == 0 || in[i-1] != rc.halant)
}

// toVisualOrder moves pre-base vowel signs in front of their consonant
// cluster and a reph behind it. With both, the order is
// vowel sign, cluster, reph.
func (c *Codec) toVisualOrder(in []rune) []rune {
	rc := &c.classes
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); {
		reph := rc.isReph(in, i)
		start := i
		if reph {
			start += 2
		}
		if !rc.banjonborno[in[start]] {
			out = append(out, in[i])
			i++
			continue
		}
		end := rc.clusterEnd(in, start)
		next := end
		if end < len(in) && rc.prekar[in[end]] {
			out = append(out, in[end])
			next++
		}
		out = append(out, in[start:end]...)
		if reph {
			out = append(out, ra, rc.halant)
		}
		i = next
	}
	return out
}

// toLogicalOrder undoes toVisualOrder on Unicode text mapped from glyphs.
// marks flags the runes which stem from a reph glyph.
func (c *Codec) toLogicalOrder(in []rune, marks []bool) []rune {
	rc := &c.classes
	in = rc.fixHalantAfterSign(in, marks)
	in = rc.moveRephs(in, marks)
	in = rc.movePrekars(in)
	return rc.swapCandrabindu(in)
}

// fixHalantAfterSign moves a halant typed after a vowel sign or nukta sign,
// together with the consonant following it, in front of the sign.
func (rc *runeClasses) fixHalantAfterSign(in []rune, marks []bool) []rune {
	for i := 1; i < len(in)-1; i++ {
		if in[i] != rc.halant || marks[i] || !(rc.isKar(in[i-1]) || rc.nukta[in[i-1]]) {
			continue
		}
		in[i-1], in[i], in[i+1] = in[i], in[i+1], in[i-1]
		marks[i-1], marks[i], marks[i+1] = marks[i], marks[i+1], marks[i-1]
		i++
	}
	return in
}

// moveRephs moves each reph in front of the consonant cluster it follows.
// One vowel sign between cluster and reph is kept with the cluster.
func (rc *runeClasses) moveRephs(in []rune, marks []bool) []rune {
	for i := 0; i+1 < len(in); i++ {
		if !marks[i] || in[i] != ra || in[i+1] != rc.halant {
			continue
		}
		end := i
		if end > 0 && rc.isKar(in[end-1]) {
			end--
		}
		if end == 0 || !rc.banjonborno[in[end-1]] {
			i++
			continue
		}
		start := rc.clusterStart(in, end)
		copy(in[start+2:i+2], in[start:i])
		in[start], in[start+1] = ra, rc.halant
		copy(marks[start+2:i+2], marks[start:i])
		marks[start], marks[start+1] = false, false
		i++
	}
	return in
}

// movePrekars moves a pre-base vowel sign behind the consonant cluster it
// precedes. ে before a cluster followed by া or ৗ becomes ো or ৌ.
func (rc *runeClasses) movePrekars(in []rune) []rune {
	out := make([]rune, 0, len(in))
	for i := 0; i < len(in); i++ {
		if !rc.prekar[in[i]] || i+1 >= len(in) || !rc.banjonborno[in[i+1]] {
			out = append(out, in[i])
			continue
		}
		end := rc.clusterEnd(in, i+1)
		out = append(out, in[i+1:end]...)
		switch {
		case in[i] == eKar && end < len(in) && in[end] == aaKar:
			out = append(out, oKar)
			end++
		case in[i] == eKar && end < len(in) && in[end] == auLength:
			out = append(out, auKar)
			end++
		default:
			out = append(out, in[i])
		}
		i = end - 1
	}
	return out
}

// swapCandrabindu puts ঁ behind a following post-base vowel sign.
func (rc *runeClasses) swapCandrabindu(in []rune) []rune {
	for i := 0; i+1 < len(in); i++ {
		if in[i] == candrabindu && rc.postkar[in[i+1]] {
			in[i], in[i+1] = in[i+1], in[i]
			i++
		}
	}
	return in
}
