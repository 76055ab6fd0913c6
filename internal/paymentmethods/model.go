package paymentmethods

import (
	"errors"
	"strings"
	"time"

	"github.com/aelwazan-Hawx/Clarity/internal/domain"
)

// PaymentMethod is an account or card the user pays from, bound to a
// single currency.
type PaymentMethod struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	Currency  string    `db:"currency" json:"currency"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type CreateRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency"`
}

func (r *CreateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name required")
	}
	if !domain.ValidCurrency(r.Currency) {
		return errors.New("currency must be SAR or EGP")
	}
	return nil
}

type UpdateRequest struct {
	Name string `json:"name"`
}

func (r *UpdateRequest) Validate() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name required")
	}
	return nil
}
