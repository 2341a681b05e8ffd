package sumtreetesting

import (
	"bytes"
	"fmt"
)

// ListingCSV renders entries as a liabilities listing with a header row.
// Salted listings use the entry index as the salt.
func ListingCSV(entries []TestEntry, salted bool) []byte {
	var buf bytes.Buffer
	if salted {
		buf.WriteString("username,salt,balance\n")
	} else {
		buf.WriteString("username,balance\n")
	}
	for i, e := range entries {
		if salted {
			fmt.Fprintf(&buf, "%s,%d,%s\n", e.Username, i, e.Sum)
			continue
		}
		fmt.Fprintf(&buf, "%s,%s\n", e.Username, e.Sum)
	}
	return buf.Bytes()
}
