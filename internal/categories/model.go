package categories

import (
	"errors"
	"strings"
	"time"
)

// Category is a user-defined transaction grouping. ExcludedFromTotals
// marks internal-transfer categories (money moved between the user's
// own accounts) whose expenses must not count toward spending totals.
type Category struct {
	ID                 string    `db:"id" json:"id"`
	UserID             string    `db:"user_id" json:"user_id"`
	Name               string    `db:"name" json:"name"`
	Type               string    `db:"type" json:"type"` // income | expense
	ExcludedFromTotals bool      `db:"excluded_from_totals" json:"excluded_from_totals"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Name               string `json:"name"`
	Type               string `json:"type"`
	ExcludedFromTotals bool   `json:"excluded_from_totals"`
}

func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name required")
	}
	if r.Type != "income" && r.Type != "expense" {
		return errors.New("type must be income or expense")
	}
	return nil
}

type UpdateRequest struct {
	Name               string `json:"name"`
	ExcludedFromTotals *bool  `json:"excluded_from_totals"`
}

func (r *UpdateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name required")
	}
	return nil
}
