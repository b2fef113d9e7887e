package extract

import (
	"testing"

	"github.com/jray-8/us-presidents-dataset/internal/model"
)

func TestStripFootnotes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"John Adams[19]", "John Adams"},
		{"George Washington[c][20]", "George Washington"},
		{"  padded [1] text  ", "padded  text"},
		{"no markers", "no markers"},
	}

	for _, tt := range tests {
		got := StripFootnotes(model.Text(tt.in))
		if got.Missing {
			t.Errorf("StripFootnotes(%q) returned missing", tt.in)
		}
		if got.Value != tt.want {
			t.Errorf("StripFootnotes(%q) = %q, want %q", tt.in, got.Value, tt.want)
		}
	}
}

func TestStripFootnotes_Idempotent(t *testing.T) {
	once := StripFootnotes(model.Text("James Monroe[b]"))
	twice := StripFootnotes(once)
	if twice != once {
		t.Errorf("second pass changed result: %q vs %q", twice.Value, once.Value)
	}
}

func TestStripFootnotes_MissingPassesThrough(t *testing.T) {
	if got := StripFootnotes(model.MissingCell); !got.Missing {
		t.Error("expected missing cell to pass through unchanged")
	}
}

func TestPartyExtractor(t *testing.T) {
	e := NewPartyExtractor(model.RecognizedParties())

	tests := []struct {
		in   string
		want []string
	}{
		{"Federalist", []string{"Federalist"}},
		{"Democratic - Republican", []string{"Democratic-Republican"}},
		{"XYZ Unaffiliated ABC", []string{"Unaffiliated"}},
		{"national   republican", []string{"National Republican"}},
		{"Whig Democratic", []string{"Whig", "Democratic"}},
		{"nothing recognized here", nil},
		{"", nil},
		// Unrecognized leading tokens must not swallow what follows.
		{"Jacksonian Democratic", []string{"Democratic"}},
		{"National Whig", []string{"Whig"}},
		{"National National Union", []string{"National Union"}},
	}

	for _, tt := range tests {
		got := e.Extract(model.Text(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("Extract(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Extract(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestPartyExtractor_FirstMatchWinsThenRestarts(t *testing.T) {
	// "National Union" must come from accumulation across two tokens,
	// and the accumulator must reset after each match.
	e := NewPartyExtractor(model.RecognizedParties())
	got := e.Extract(model.Text("National Union Republican"))
	want := []string{"National Union", "Republican"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtractVicePresidents(t *testing.T) {
	in := "John Adams Vacant throughout presidency Thomas Jefferson"
	got := ExtractVicePresidents(model.Text(in))
	want := []string{"John Adams", "Vacant throughout presidency", "Thomas Jefferson"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractVicePresidents_VacancyWithYear(t *testing.T) {
	got := ExtractVicePresidents(model.Text("William R. King vacant after April 18, 1853 John C. Breckinridge"))
	want := []string{"William R. King", "vacant after April 18, 1853", "John C. Breckinridge"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestExtractVicePresidents_SingleName(t *testing.T) {
	got := ExtractVicePresidents(model.Text("  Kamala   Harris "))
	if len(got) != 1 || got[0] != "Kamala Harris" {
		t.Errorf("got %v, want [Kamala Harris]", got)
	}
}

func TestExtractElections(t *testing.T) {
	tests := []struct {
		in   string
		want []*int
	}{
		{"1789 1792", []*int{intp(1789), intp(1792)}},
		{"1788–89", []*int{intp(1788)}},
		{"1789 N/A", []*int{intp(1789), nil}},
		{"", nil},
	}

	for _, tt := range tests {
		got := ExtractElections(model.Text(tt.in))
		if len(got) != len(tt.want) {
			t.Errorf("ExtractElections(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if !sameInt(got[i], tt.want[i]) {
				t.Errorf("ExtractElections(%q)[%d] mismatch", tt.in, i)
			}
		}
	}
}

func TestSplitNameBirthDeath(t *testing.T) {
	name, birth, death := SplitNameBirthDeath(model.Text("John Adams (1735–1826)"))
	if name == nil || *name != "John Adams" {
		t.Errorf("name = %v, want John Adams", name)
	}
	if !sameInt(birth, intp(1735)) || !sameInt(death, intp(1826)) {
		t.Errorf("birth/death = %v/%v, want 1735/1826", birth, death)
	}

	name, birth, death = SplitNameBirthDeath(model.Text("Joe Biden (b. 1942)"))
	if name == nil || *name != "Joe Biden" {
		t.Errorf("name = %v, want Joe Biden", name)
	}
	if !sameInt(birth, intp(1942)) || death != nil {
		t.Errorf("birth/death = %v/%v, want 1942/nil", birth, death)
	}

	name, birth, death = SplitNameBirthDeath(model.Text("no parens here"))
	if name != nil || birth != nil || death != nil {
		t.Errorf("expected all-nil triple on no match, got %v/%v/%v", name, birth, death)
	}
}

func TestSplitTerm(t *testing.T) {
	start, end := SplitTerm(model.Text("March 4, 1797 – March 4, 1801"))
	if start == nil || *start != "March 4, 1797" {
		t.Errorf("start = %v, want March 4, 1797", start)
	}
	if end == nil || *end != "March 4, 1801" {
		t.Errorf("end = %v, want March 4, 1801", end)
	}

	start, end = SplitTerm(model.Text("January 20, 2021 – Incumbent"))
	if start == nil || *start != "January 20, 2021" {
		t.Errorf("start = %v, want January 20, 2021", start)
	}
	if end != nil {
		t.Errorf("end = %v, want nil for incumbent", end)
	}

	start, end = SplitTerm(model.Text("no separator at all"))
	if start != nil || end != nil {
		t.Errorf("expected nil pair, got %v/%v", start, end)
	}
}

func intp(n int) *int { return &n }

func sameInt(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
