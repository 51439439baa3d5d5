package leads

import (
	"hash/fnv"
	"time"
)

// Decorate computes the presentation-only fields from the lead's identity.
// The mapping is deterministic: the same ID always yields the same
// priority, due offset, and comment count. Purely cosmetic, never
// persisted or sent back to the server.
func Decorate(lead Lead) Decoration {
	h := fnv.New32a()
	_, _ = h.Write([]byte(lead.ID))
	sum := h.Sum32()

	priority := PriorityLow
	switch sum % 3 {
	case 1:
		priority = PriorityMedium
	case 2:
		priority = PriorityHigh
	}

	base := lead.CreatedAt
	if base.IsZero() {
		base = time.Now().UTC().Truncate(24 * time.Hour)
	}
	dueOffset := int(sum%14) + 1

	return Decoration{
		Priority:     priority,
		DueDate:      base.AddDate(0, 0, dueOffset),
		CommentCount: int(sum % 9),
	}
}

func decorateAll(items []Lead) []Lead {
	for i := range items {
		items[i].Decoration = Decorate(items[i])
	}
	return items
}
