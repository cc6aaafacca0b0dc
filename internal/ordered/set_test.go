package ordered

import (
	"reflect"
	"testing"
)

func TestSet_KeepsFirstOccurrenceOrder(t *testing.T) {
	s := NewSet("300", "100", "300", "200", "100")
	want := []string{"300", "100", "200"}
	if got := s.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values() = %v, want %v", got, want)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSet_AddReportsNovelty(t *testing.T) {
	var s Set[int]
	if !s.Add(1) {
		t.Error("first Add should report true")
	}
	if s.Add(1) {
		t.Error("second Add of same value should report false")
	}
	if !s.Contains(1) || s.Contains(2) {
		t.Errorf("Contains mismatch: 1=%v 2=%v", s.Contains(1), s.Contains(2))
	}
}

func TestSet_ValuesIsCopy(t *testing.T) {
	s := NewSet("a", "b")
	vals := s.Values()
	vals[0] = "z"
	if got := s.Values()[0]; got != "a" {
		t.Errorf("mutating Values() leaked into set, got %q", got)
	}
}

func TestSet_Empty(t *testing.T) {
	s := NewSet[string]()
	if s.Len() != 0 || len(s.Values()) != 0 {
		t.Errorf("empty set should have no values, got %v", s.Values())
	}
}
