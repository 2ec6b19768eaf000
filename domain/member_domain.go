package domain

import (
	"errors"
)

var (
	MessageSuccessRegister = "signup completed successfully"
	MessageFailedRegister  = "failed to sign up"

	ErrUsernameTaken = errors.New("username is already taken")
)

const SignupReward = 2000

type (
	RegisterRequest struct {
		Username        string `json:"username"`
		Nickname        string `json:"nickname"`
		Password        string `json:"password"`
		PasswordConfirm string `json:"password_confirm"`
	}

	// FieldErrors maps an offending signup field to its inline message.
	// Empty map means the form passed.
	FieldErrors map[string]string

	RegisterResponse struct {
		MemberID      string `json:"member_id"`
		Nickname      string `json:"nickname"`
		AwardedPoints int    `json:"awarded_points"`
		Balance       int    `json:"balance"`
	}
)

// ValidationError wraps per-field signup errors so handlers can surface them
// inline next to the offending fields.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "signup validation failed"
}
