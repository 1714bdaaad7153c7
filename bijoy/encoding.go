package bijoy

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// EncodeBytes encodes Bijoy text as Windows-1252 bytes, the form expected by
// Bijoy fonts. Text containing characters outside the code page, including
// Bengali left unconverted, is an error.
func EncodeBytes(legacy string) ([]byte, error) {
	b, err := charmap.Windows1252.NewEncoder().Bytes([]byte(legacy))
	if err != nil {
		return nil, fmt.Errorf("bijoy text not encodable as windows-1252: %w", err)
	}
	return b, nil
}

// DecodeBytes decodes Windows-1252 bytes to Bijoy text.
func DecodeBytes(b []byte) (string, error) {
	s, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(s), nil
}
