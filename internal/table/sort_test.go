package table

import (
	"reflect"
	"testing"
)

func TestSortRows_Numeric(t *testing.T) {
	rows := []Row{
		{"Cy", "40"},
		{"Ann", "9"},
		{"Bo", "100"},
	}
	SortRows(rows, 1, false)

	want := []Row{
		{"Ann", "9"},
		{"Cy", "40"},
		{"Bo", "100"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("SortRows() = %v, want numeric order %v", rows, want)
	}
}

func TestSortRows_Descending(t *testing.T) {
	rows := []Row{
		{"Ann", "9"},
		{"Bo", "100"},
	}
	SortRows(rows, 1, true)
	if rows[0][1] != "100" {
		t.Errorf("first row = %v, want the largest value first", rows[0])
	}
}

func TestSortRows_StringFallback(t *testing.T) {
	// A non-numeric cell anywhere in the pair forces string comparison,
	// case-insensitively.
	rows := []Row{
		{"delta"},
		{"Bravo"},
		{"alpha"},
	}
	SortRows(rows, 0, false)

	want := []Row{{"alpha"}, {"Bravo"}, {"delta"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("SortRows() = %v, want %v", rows, want)
	}
}

func TestSortRows_MixedNumericAndText(t *testing.T) {
	rows := []Row{
		{"10"},
		{"N/A"},
		{"2"},
	}
	// "10" vs "2" is numeric; pairs touching "N/A" compare as strings.
	SortRows(rows, 0, false)
	if len(rows) != 3 {
		t.Fatalf("row count changed: %d", len(rows))
	}
}

func TestSortRows_RaggedRows(t *testing.T) {
	rows := []Row{
		{"Bo", "zz"},
		{"Ann"}, // missing sort column compares as ""
	}
	SortRows(rows, 1, false)
	if rows[0][0] != "Ann" {
		t.Errorf("first row = %v, want the ragged row first", rows[0])
	}
}

func TestSortRows_Stable(t *testing.T) {
	rows := []Row{
		{"first", "1"},
		{"second", "1"},
		{"third", "1"},
	}
	SortRows(rows, 1, false)

	want := []Row{{"first", "1"}, {"second", "1"}, {"third", "1"}}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("equal keys reordered: %v", rows)
	}
}
