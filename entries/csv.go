package entries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

// ParseCSV reads a liabilities listing. The first record is a header and is
// skipped. Blank lines are ignored.
func ParseCSV(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var entries []Entry
	header := true
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		e, err := parseRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func parseRecord(record []string) (Entry, error) {
	var username, salt, balance string
	switch len(record) {
	case 2:
		username, balance = record[0], record[1]
	case 3:
		username, salt, balance = record[0], record[1], record[2]
	default:
		return Entry{}, fmt.Errorf("%w: got %d", ErrBadRecord, len(record))
	}

	b, ok := parseNonNegative(balance)
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrBadBalance, balance)
	}
	e, err := NewEntry(strings.TrimSpace(username), b)
	if err != nil {
		return Entry{}, err
	}

	if len(record) == 3 {
		s, ok := parseNonNegative(salt)
		if !ok {
			return Entry{}, fmt.Errorf("%w: %q", ErrBadSalt, salt)
		}
		e.Salt = s
	}
	return e, nil
}

func parseNonNegative(s string) (*big.Int, bool) {
	x, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || x.Sign() < 0 {
		return nil, false
	}
	return x, true
}
