package entities

import (
	"time"

	"github.com/google/uuid"
)

type Member struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Nickname     string    `json:"nickname"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
