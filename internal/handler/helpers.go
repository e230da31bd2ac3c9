package handler

import (
	"errors"

	"go-pos-ws/internal/service"

	"github.com/google/uuid"
)

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// statusFor maps service sentinels to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrTransactionNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return 404
	case errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrEmailTaken):
		return 409
	default:
		return 400
	}
}
