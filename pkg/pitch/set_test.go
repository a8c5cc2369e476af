package pitch

import "testing"

func TestSet_AddHas(t *testing.T) {
	s := NewSet(E, GSharp, B)

	for _, c := range []Class{E, GSharp, B} {
		if !s.Has(c) {
			t.Errorf("Has(%v) = false, want true", c)
		}
	}
	for _, c := range []Class{C, F, A} {
		if s.Has(c) {
			t.Errorf("Has(%v) = true, want false", c)
		}
	}
}

func TestSet_Empty(t *testing.T) {
	var s Set
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if s.Has(C) {
		t.Error("empty set should not contain C")
	}
	if len(s.Classes()) != 0 {
		t.Errorf("Classes() = %v, want empty", s.Classes())
	}
}

func TestSet_ContainsAll(t *testing.T) {
	scale := NewSet(E, FSharp, GSharp, A, B, CSharp, DSharp)
	triad := NewSet(E, GSharp, B)

	if !scale.ContainsAll(triad) {
		t.Error("scale should contain the triad")
	}
	if triad.ContainsAll(scale) {
		t.Error("triad should not contain the scale")
	}
	if !triad.ContainsAll(triad) {
		t.Error("a set should contain itself")
	}
	if !triad.ContainsAll(0) {
		t.Error("every set should contain the empty set")
	}
}

func TestSet_Classes(t *testing.T) {
	s := NewSet(B, C, FSharp)
	got := s.Classes()
	want := []Class{C, FSharp, B}

	if len(got) != len(want) {
		t.Fatalf("Classes() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSet_DuplicateAdd(t *testing.T) {
	s := NewSet(E, E, E)
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}
