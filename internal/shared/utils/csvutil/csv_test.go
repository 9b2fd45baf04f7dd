package csvutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarshal(t *testing.T) {
	columns := []Column{
		{Key: "name", Label: "Site"},
		{Key: "power", Label: "Power"},
	}

	rows := []map[string]any{
		{"name": "Kumasi", "power": 5000},
		{"name": "Tema", "power": 600},
	}

	got := Marshal(columns, rows)
	want := "\"Site\",\"Power\"\n\"Kumasi\",\"5000\"\n\"Tema\",\"600\""
	assert.Equal(t, want, got)
}

func TestMarshalEscapesEmbeddedQuotes(t *testing.T) {
	columns := []Column{{Key: "description", Label: "Description"}}
	rows := []map[string]any{
		{"description": `PUMP "NMT MAX II" unit`},
	}

	got := Marshal(columns, rows)
	want := "\"Description\"\n\"PUMP \"\"NMT MAX II\"\" unit\""
	assert.Equal(t, want, got)
}

func TestMarshalHandlesMissingAndNilValues(t *testing.T) {
	columns := []Column{
		{Key: "a", Label: "A"},
		{Key: "b", Label: "B"},
	}
	rows := []map[string]any{
		{"a": "x"},
		{"a": nil, "b": "y"},
	}

	got := Marshal(columns, rows)
	want := "\"A\",\"B\"\n\"x\",\"\"\n\"\",\"y\""
	assert.Equal(t, want, got)
}

func TestMarshalMultilineFieldStaysInsideQuotes(t *testing.T) {
	columns := []Column{{Key: "d", Label: "Description"}}
	rows := []map[string]any{{"d": "line one\nline two"}}

	got := Marshal(columns, rows)
	want := "\"Description\"\n\"line one\nline two\""
	assert.Equal(t, want, got)
}
