// Package csvutil serializes tabular rows for the export endpoints.
//
// Every field is double-quoted and embedded quotes are doubled, matching the
// dialect the export consumers expect. encoding/csv is deliberately not used:
// it quotes only when required, which changes the output byte-for-byte.
package csvutil

import (
	"fmt"
	"strings"
)

// Column pairs a row key with the header label emitted for it.
type Column struct {
	Key   string
	Label string
}

// Marshal renders rows into a CSV document: a quoted header line followed by
// one quoted record per row, in column order. Missing keys render as empty
// fields.
func Marshal(columns []Column, rows []map[string]any) string {
	var b strings.Builder

	for i, col := range columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(escape(col.Label))
	}

	for _, row := range rows {
		b.WriteByte('\n')
		for i, col := range columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escape(row[col.Key]))
		}
	}

	return b.String()
}

func escape(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = ""
	case string:
		s = t
	default:
		s = fmt.Sprintf("%v", t)
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
