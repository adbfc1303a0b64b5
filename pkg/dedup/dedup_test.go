package dedup

import "testing"

func TestAdmitFirstSeenWins(t *testing.T) {
	s := NewSeenSet()

	if !s.Admit("X1") {
		t.Fatal("first Admit must return true")
	}
	for i := 0; i < 100; i++ {
		if s.Admit("X1") {
			t.Fatalf("Admit returned true again on call %d", i+2)
		}
	}
	if s.Len() != 1 {
		t.Fatalf("Len = %d; want 1", s.Len())
	}
}

func TestAdmitIndependentIdentifiers(t *testing.T) {
	s := NewSeenSet()

	ids := []string{"a", "b", "c", "a", "b", "d"}
	var admitted int
	for _, id := range ids {
		if s.Admit(id) {
			admitted++
		}
	}
	if admitted != 4 {
		t.Fatalf("admitted %d distinct ids; want 4", admitted)
	}
	if s.Len() != 4 {
		t.Fatalf("Len = %d; want 4", s.Len())
	}
}
