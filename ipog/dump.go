package ipog

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders ca as a plain text table (values are not padded to a common
// column width):
//
//	line 1: row count as decimal
//	line 2: parameter names, space-separated, in declared order
//	line 3: a run of '-' as long as line 2
//	lines 4..: one row per line, values in the same column order
//
// No trailing blank line.
func Dump(ca CoveringArray) string {
	var b strings.Builder

	fmt.Fprintln(&b, strconv.Itoa(len(ca.Rows)))

	header := strings.Join(ca.Names, " ")
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", len(header)))

	for _, row := range ca.Rows {
		b.WriteByte('\n')
		values := make([]string, len(ca.Names))
		for i, name := range ca.Names {
			values[i] = fmt.Sprint(row[name])
		}
		b.WriteString(strings.Join(values, " "))
	}

	return b.String()
}
