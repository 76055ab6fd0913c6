package ledger

import "strings"

// Criteria is a set of independent, AND-combined transaction filters.
// Zero-valued fields are treated as "no constraint" and always pass.
type Criteria struct {
	Currency string
	Kind     Kind
	Category string
	From     string // inclusive lower date bound, YYYY-MM-DD
	To       string // inclusive upper date bound, YYYY-MM-DD
	Search   string // case-insensitive substring of category or description
}

// Matches reports whether a transaction satisfies every set constraint.
// ISO dates compare correctly as strings, so the range check is plain
// string ordering.
func (c Criteria) Matches(t Transaction) bool {
	if c.Currency != "" && t.Currency != c.Currency {
		return false
	}
	if c.Kind != "" && t.Kind != c.Kind {
		return false
	}
	if c.Category != "" && t.Category != c.Category {
		return false
	}
	if c.From != "" && t.Date < c.From {
		return false
	}
	if c.To != "" && t.Date > c.To {
		return false
	}
	if c.Search != "" {
		needle := strings.ToLower(c.Search)
		if !strings.Contains(strings.ToLower(t.Category), needle) &&
			!strings.Contains(strings.ToLower(t.Description), needle) {
			return false
		}
	}
	return true
}

// Filter returns the transactions matching the criteria, preserving
// input order.
func Filter(txns []Transaction, c Criteria) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if c.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
