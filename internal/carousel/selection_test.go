package carousel

import "testing"

func TestSelection(t *testing.T) {
	s := NewSelection(testCatalog(t, "A", "B", "C"))

	if s.Current() != "A" {
		t.Fatalf("initial selection = %q, want A", s.Current())
	}

	if !s.Select("C") {
		t.Error("Select(C) should be accepted")
	}
	if s.Current() != "C" || s.Index() != 2 {
		t.Errorf("after Select(C): current=%q index=%d", s.Current(), s.Index())
	}

	if s.Select("nonexistent") {
		t.Error("Select(nonexistent) should be rejected")
	}
	if s.Current() != "C" {
		t.Errorf("invalid select changed selection to %q", s.Current())
	}
}
