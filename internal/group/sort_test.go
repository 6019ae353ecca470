package group

import (
	"testing"
)

func TestSequenceNumber(t *testing.T) {
	tests := []struct {
		name string
		file string
		want int
	}{
		{"trailing standard", "Tale - 07.mp3", 7},
		{"trailing no space", "Tale-3.mp3", 3},
		{"trailing padded", "Tale - 007.MP3", 7},
		{"trailing wide whitespace", "Tale -   12.mp3", 12},
		{"trailing multi digit", "Tale - 1234.mp3", 1234},
		{"leading dash form", "01 - Chapter.mp3", 1},
		{"leading period form", "03. Chapter.mp3", 3},
		{"leading tight dash", "05-Chapter.mp3", 5},
		{"no number", "Tale.mp3", 0},
		{"number in middle", "Tale 04 extra.mp3", 0},
		{"full path", "/audio/Tale - 09.mp3", 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SequenceNumber(tt.file); got != tt.want {
				t.Errorf("SequenceNumber(%q) = %d, want %d", tt.file, got, tt.want)
			}
		})
	}
}

func TestSequenceNumber_TrailingWinsOverLeading(t *testing.T) {
	// Both forms present; the trailing number decides the order.
	if got := SequenceNumber("01 - Tale - 07.mp3"); got != 7 {
		t.Errorf("got %d, want 7", got)
	}
}

func TestSortBySequence_Numeric(t *testing.T) {
	in := []string{
		"Tale - 3.mp3",
		"Tale - 1.mp3",
		"Tale - 2.mp3",
		"Tale - 10.mp3",
	}
	want := []string{
		"Tale - 1.mp3",
		"Tale - 2.mp3",
		"Tale - 3.mp3",
		"Tale - 10.mp3", // numeric: 10 after 2, not between 1 and 2
	}
	got := SortBySequence(in)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("position %d: got %q, want %q (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestSortBySequence_StableTies(t *testing.T) {
	in := []string{
		"Zeta.mp3",  // fallback 0
		"Alpha.mp3", // fallback 0
		"Tale - 1.mp3",
	}
	got := SortBySequence(in)
	if got[0] != "Zeta.mp3" || got[1] != "Alpha.mp3" {
		t.Errorf("zero-fallback ties must keep input order, got %v", got)
	}
	if got[2] != "Tale - 1.mp3" {
		t.Errorf("numbered file must sort after zero fallbacks, got %v", got)
	}
}

func TestSortBySequence_InputUntouched(t *testing.T) {
	in := []string{"Tale - 2.mp3", "Tale - 1.mp3"}
	_ = SortBySequence(in)
	if in[0] != "Tale - 2.mp3" {
		t.Error("input slice was reordered")
	}
}
