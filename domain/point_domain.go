package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetBalance = "point balance retrieved successfully"
	MessageSuccessGetHistory = "point history retrieved successfully"
	MessageFailedGetHistory  = "failed to retrieve point history"

	ErrInsufficientPoints = errors.New("insufficient points")
	ErrNegativeAmount     = errors.New("point amount must be positive")
)

// Initial demo balance of the session.
const StartingBalance = 1250

type (
	BalanceResponse struct {
		Balance int `json:"balance"`
	}

	PointTransactionResponse struct {
		ID          string    `json:"id"`
		Amount      int       `json:"amount"`
		Type        string    `json:"type"` // Reward, Redeem
		Feature     string    `json:"feature"`
		Description string    `json:"description"`
		Balance     int       `json:"balance"`
		CreatedAt   time.Time `json:"created_at"`
	}
)
