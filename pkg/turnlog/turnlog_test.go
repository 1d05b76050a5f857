package turnlog

import (
	"fmt"
	"testing"
)

func TestAppendOrdering(t *testing.T) {
	log := New()

	for i := 0; i < 5; i++ {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		turn := log.Append(role, fmt.Sprintf("message %d", i))
		if turn.Sequence != i+1 {
			t.Errorf("Sequence = %d, want %d", turn.Sequence, i+1)
		}
	}

	turns := log.All()
	if len(turns) != 5 {
		t.Fatalf("Len = %d, want 5", len(turns))
	}
	for i, turn := range turns {
		if turn.Sequence != i+1 {
			t.Errorf("turns[%d].Sequence = %d, want %d", i, turn.Sequence, i+1)
		}
		if turn.Content != fmt.Sprintf("message %d", i) {
			t.Errorf("turns[%d].Content = %q", i, turn.Content)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	log := New()
	log.Append(RoleUser, "original")

	snapshot := log.All()
	snapshot[0].Content = "tampered"

	if got, _ := log.Last(); got.Content != "original" {
		t.Errorf("log mutated through All() snapshot: %q", got.Content)
	}
}

func TestLast(t *testing.T) {
	log := New()

	if _, ok := log.Last(); ok {
		t.Error("Last on empty log should return ok=false")
	}

	log.Append(RoleUser, "first")
	log.Append(RoleAssistant, "second")

	last, ok := log.Last()
	if !ok {
		t.Fatal("Last should return ok=true")
	}
	if last.Role != RoleAssistant || last.Content != "second" {
		t.Errorf("Last = %+v, want assistant/second", last)
	}
}

func TestReset(t *testing.T) {
	log := New()
	log.Append(RoleUser, "a")
	log.Append(RoleAssistant, "b")

	log.Reset()

	if log.Len() != 0 {
		t.Errorf("Len after Reset = %d, want 0", log.Len())
	}

	// Sequence restarts after reset
	turn := log.Append(RoleUser, "fresh")
	if turn.Sequence != 1 {
		t.Errorf("Sequence after Reset = %d, want 1", turn.Sequence)
	}
}
