package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrScreenTransition = errors.New("screen transition not allowed")
	ErrProductNotFound  = errors.New("product not found")
)
