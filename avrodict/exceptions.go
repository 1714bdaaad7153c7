package avrodict

import (
	"io"
	"sort"
)

// ExceptionReader streams the whole-word exceptions of a parsed definition
// as (Roman word, Bengali word), sorted by Bengali word.
type ExceptionReader struct {
	exceptions map[string]string
	keys       []string
	pos        int
}

// NewExceptionReader creates a reader over the exceptions of doc.
func NewExceptionReader(doc *Document) *ExceptionReader {
	keys := make([]string, 0, len(doc.Exceptions))
	for bn := range doc.Exceptions {
		keys = append(keys, bn)
	}
	sort.Strings(keys)
	return &ExceptionReader{exceptions: doc.Exceptions, keys: keys}
}

// Next returns the next exception. It returns io.EOF when exhausted.
func (r *ExceptionReader) Next() (word, replacement string, err error) {
	if r.pos >= len(r.keys) {
		return "", "", io.EOF
	}
	bn := r.keys[r.pos]
	r.pos++
	return r.exceptions[bn], bn, nil
}
