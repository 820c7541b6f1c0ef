package core

import (
	"bytes"
	"errors"
	"fmt"

	"radtui/internal/parser"
	"radtui/internal/rewrite"
	"radtui/pkg/record"
)

var ErrIndexOutOfRange = errors.New("record index out of range")

// Store is the in-memory record collection of one users file. The bytes
// outside the managed region are kept as loaded and re-emitted on every
// Serialize. Store is not safe for concurrent use.
type Store struct {
	content []byte
	region  parser.Region
	records []record.Record
	dirty   bool
}

// Load locates the managed region in content and parses its records. It fails
// with parser.ErrMarkersNotFound when either marker is missing.
func Load(content []byte, m parser.Markers) (*Store, error) {
	lines, err := parser.ReadLines(bytes.NewReader(content))
	if err != nil {
		return nil, err
	}

	region, err := parser.LocateRegion(lines, m)
	if err != nil {
		return nil, err
	}

	return &Store{
		content: append([]byte(nil), content...),
		region:  region,
		records: parser.ParseRecords(region.Body),
	}, nil
}

// Records returns a copy of the records in display and write order.
func (s *Store) Records() []record.Record {
	out := make([]record.Record, len(s.records))
	copy(out, s.records)
	return out
}

func (s *Store) Len() int {
	return len(s.records)
}

// Get returns the record at index i.
func (s *Store) Get(i int) (record.Record, error) {
	if err := s.checkIndex(i); err != nil {
		return record.Record{}, err
	}
	return s.records[i], nil
}

// Add appends r. Callers validate r beforehand.
func (s *Store) Add(r record.Record) {
	s.records = append(s.records, r)
	s.dirty = true
}

// Update replaces the record at index i. Callers validate r beforehand.
func (s *Store) Update(i int, r record.Record) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.records[i] = r
	s.dirty = true
	return nil
}

// Delete removes the record at index i; later records shift down by one.
func (s *Store) Delete(i int) error {
	if err := s.checkIndex(i); err != nil {
		return err
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.dirty = true
	return nil
}

// IndexOfMAC returns the index of the first record with the given MAC, or -1.
func (s *Store) IndexOfMAC(mac string) int {
	mac = record.NormalizeMAC(mac)
	for i, r := range s.records {
		if r.MAC == mac {
			return i
		}
	}
	return -1
}

// Serialize returns the full file content for the current records: the
// original prefix and start marker, the canonical rendering of every record,
// then the end marker and original suffix.
func (s *Store) Serialize() ([]byte, error) {
	return rewrite.ReplaceBetween(s.content, s.region.Start, s.region.End, record.Render(s.records))
}

// Dirty reports whether the records changed since load or the last save.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MarkSaved clears the dirty flag after a successful write.
func (s *Store) MarkSaved() {
	s.dirty = false
}

func (s *Store) checkIndex(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d (have %d records)", ErrIndexOutOfRange, i, len(s.records))
	}
	return nil
}
