package entities

import (
	"time"

	"github.com/google/uuid"
)

// PointTransaction records one balance mutation together with the running
// balance after it was applied.
type PointTransaction struct {
	ID          uuid.UUID `json:"id"`
	Amount      int       `json:"amount"` // negative for redemptions
	Type        string    `json:"type"`   // Reward, Redeem
	Feature     string    `json:"feature"`
	Description string    `json:"description"`
	Balance     int       `json:"balance"`
	CreatedAt   time.Time `json:"created_at"`
}
