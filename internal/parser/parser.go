package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"radtui/internal/logger"
	"radtui/pkg/record"
)

const (
	DefaultStartMarker = "## BEGIN CURSES ##"
	DefaultEndMarker   = "## END CURSES ##"

	// linesPerRecord counts the credential line, two fixed attribute lines
	// and the VLAN line. The optional comment line comes on top.
	linesPerRecord = 4

	maxLineSize = 1024 * 1024
)

var ErrMarkersNotFound = errors.New("markers not found in file")

var (
	// Group 1: identity MAC, Group 2: quoted password MAC.
	credentialRe = regexp.MustCompile(`(?i)^([0-9a-f:]{17})\s+Cleartext-Password := "([0-9a-f:]{17})"`)
	// Group 1: VLAN id.
	vlanRe = regexp.MustCompile(`Tunnel-Private-Group-Id\s*=\s*(\d+)`)
)

// Markers are the literal lines delimiting the managed region.
type Markers struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// DefaultMarkers returns the markers radtui writes into users files.
func DefaultMarkers() Markers {
	return Markers{Start: DefaultStartMarker, End: DefaultEndMarker}
}

// Region locates the managed block inside a file's lines.
type Region struct {
	Start int      // Index of the start marker line
	End   int      // Index of the end marker line
	Body  []string // Lines strictly between the markers
}

// ReadLines splits r into lines the same way bufio.ScanLines does, so the
// indexes agree with the rewriter that later splices the region back in.
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading lines: %w", err)
	}
	return lines, nil
}

// LocateRegion finds the first start marker and the first end marker after it.
func LocateRegion(lines []string, m Markers) (Region, error) {
	start := indexOf(lines, m.Start, 0)
	if start < 0 {
		return Region{}, fmt.Errorf("%w: missing start marker %q", ErrMarkersNotFound, m.Start)
	}
	end := indexOf(lines, m.End, start+1)
	if end < 0 {
		return Region{}, fmt.Errorf("%w: missing end marker %q", ErrMarkersNotFound, m.End)
	}
	return Region{Start: start, End: end, Body: lines[start+1 : end]}, nil
}

func indexOf(lines []string, s string, from int) int {
	for i := from; i < len(lines); i++ {
		if lines[i] == s {
			return i
		}
	}
	return -1
}

// ParseRecords extracts the well-formed records of a region body. Lines that
// do not start a valid block are skipped one at a time; a comment that is not
// followed by a valid block is dropped.
func ParseRecords(body []string) []record.Record {
	log := logger.WithComponent("parser")
	records := []record.Record{}

	i := 0
	for i < len(body) {
		comment := ""
		at := i
		if strings.HasPrefix(body[i], "#") {
			comment = body[i]
			at++
		}

		if r, ok := matchBlock(body, at); ok {
			if name := record.DeviceNameFromComment(comment); name != "" {
				r.Comment = comment
				r.DeviceName = name
				r.SourceLines = append([]string{comment}, r.SourceLines...)
			}
			records = append(records, r)
			i = at + linesPerRecord
			continue
		}

		log.Debug().Int("line", i).Str("content", body[i]).Msg("skipping line outside a record block")
		// Resume right after the attempt start, so a comment that fails to
		// label a block is re-examined as the next candidate comment.
		i++
	}

	return records
}

// matchBlock tries to read one record from the four lines starting at at.
func matchBlock(body []string, at int) (record.Record, bool) {
	if at+linesPerRecord > len(body) {
		return record.Record{}, false
	}
	block := body[at : at+linesPerRecord]

	cred := credentialRe.FindStringSubmatch(block[0])
	if cred == nil || !strings.EqualFold(cred[1], cred[2]) {
		return record.Record{}, false
	}
	mac := strings.ToLower(cred[1])
	if !record.IsValidMAC(mac) {
		return record.Record{}, false
	}

	vlan := vlanRe.FindStringSubmatch(block[3])
	if vlan == nil {
		return record.Record{}, false
	}

	return record.Record{
		MAC:         mac,
		VLAN:        vlan[1],
		SourceLines: append([]string(nil), block...),
	}, true
}

// ParseFile reads filename, locates the managed region and parses it.
func ParseFile(filename string, m Markers) (Region, []record.Record, error) {
	file, err := os.Open(filename)
	if err != nil {
		return Region{}, nil, fmt.Errorf("failed to open file %s: %w", filename, err)
	}
	defer file.Close()

	lines, err := ReadLines(file)
	if err != nil {
		return Region{}, nil, fmt.Errorf("error reading file %s: %w", filename, err)
	}

	region, err := LocateRegion(lines, m)
	if err != nil {
		return Region{}, nil, fmt.Errorf("%s: %w", filename, err)
	}

	return region, ParseRecords(region.Body), nil
}
