package leads

import (
	"testing"
	"time"
)

func TestDecorate_Deterministic(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	lead := Lead{ID: "lead-7f3a", CreatedAt: created}

	first := Decorate(lead)
	second := Decorate(lead)
	if first != second {
		t.Fatalf("decoration not deterministic: %+v vs %+v", first, second)
	}
	if first.Priority == "" {
		t.Error("priority not assigned")
	}
	if !first.DueDate.After(created) {
		t.Errorf("due date %v not after created %v", first.DueDate, created)
	}
	if first.CommentCount < 0 || first.CommentCount > 8 {
		t.Errorf("comment count %d out of range", first.CommentCount)
	}
}

func TestDecorate_DistinctIDsVary(t *testing.T) {
	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	seen := map[Priority]bool{}
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h"} {
		d := Decorate(Lead{ID: id, CreatedAt: created})
		seen[d.Priority] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected multiple priority buckets across ids, got %v", seen)
	}
}
