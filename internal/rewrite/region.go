package rewrite

import (
	"bytes"
	"fmt"
)

// ReplaceBetween rewrites content so that the lines strictly between the
// marker lines at index start and end are replaced by body. Everything else,
// markers included, is copied through unchanged. Every output line ends in
// '\n'.
func ReplaceBetween(content []byte, start, end int, body []string) ([]byte, error) {
	if start < 0 || end <= start {
		return nil, fmt.Errorf("invalid region markers at lines %d and %d", start, end)
	}

	var rw LineRewriter = NewScannerRewriter(bytes.NewReader(content))
	if err := rw.ReplaceLines(start+1, end-1, body); err != nil {
		return nil, fmt.Errorf("failed to replace region body: %w", err)
	}
	if err := rw.CopyRemainingLines(); err != nil {
		return nil, fmt.Errorf("failed to copy region suffix: %w", err)
	}

	return rw.Bytes(), nil
}
