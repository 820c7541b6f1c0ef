package rewrite

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const maxLineSize = 1024 * 1024

// ScannerRewriter implements LineRewriter using bufio.Scanner.
type ScannerRewriter struct {
	scanner  *bufio.Scanner
	output   bytes.Buffer
	lineNo   int  // how many lines have been consumed (scanned) so far
	finished bool // true once we've reached EOF
}

// NewScannerRewriter constructs a ScannerRewriter over an io.Reader (the full file content).
func NewScannerRewriter(r io.Reader) *ScannerRewriter {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &ScannerRewriter{scanner: scanner}
}

// CopyLinesUntil writes original lines [0..lineIndex-1] to output and positions the scanner at lineIndex.
func (rw *ScannerRewriter) CopyLinesUntil(lineIndex int) error {
	if rw.finished {
		return nil
	}
	for rw.lineNo < lineIndex {
		if !rw.scanner.Scan() {
			rw.finished = true
			return rw.scanner.Err()
		}
		rw.output.Write(rw.scanner.Bytes())
		rw.output.WriteByte('\n')
		rw.lineNo++
	}
	return rw.scanner.Err()
}

// ReplaceLines replaces all original lines from startLine..endLine (inclusive) with newLines.
func (rw *ScannerRewriter) ReplaceLines(startLine, endLine int, newLines []string) error {
	if endLine < startLine-1 {
		return fmt.Errorf("invalid line range %d..%d", startLine, endLine)
	}
	// 1) Copy up to startLine (this consumes lines 0..startLine-1).
	if err := rw.CopyLinesUntil(startLine); err != nil {
		return err
	}
	if rw.lineNo < startLine {
		return fmt.Errorf("line %d is past the end of input (%d lines)", startLine, rw.lineNo)
	}
	// 2) Skip (consume without writing) lines [startLine..endLine].
	for rw.lineNo <= endLine {
		if !rw.scanner.Scan() {
			rw.finished = true
			if err := rw.scanner.Err(); err != nil {
				return err
			}
			return fmt.Errorf("line %d is past the end of input (%d lines)", endLine, rw.lineNo)
		}
		rw.lineNo++
	}
	// 3) Write each newLine + "\n".
	for _, nl := range newLines {
		rw.output.WriteString(nl)
		rw.output.WriteByte('\n')
	}
	return nil
}

// CopyRemainingLines writes all lines from the current scanner position through EOF.
func (rw *ScannerRewriter) CopyRemainingLines() error {
	if rw.finished {
		return nil
	}
	for rw.scanner.Scan() {
		rw.output.Write(rw.scanner.Bytes())
		rw.output.WriteByte('\n')
		rw.lineNo++
	}
	rw.finished = true
	return rw.scanner.Err()
}

// Bytes returns the fully rewritten buffer.
func (rw *ScannerRewriter) Bytes() []byte {
	return rw.output.Bytes()
}
