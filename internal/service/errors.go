package service

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientPayment = errors.New("tendered amount does not cover the total")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrValidation          = errors.New("invalid request")
)

// InvalidProductError names the offending product id so the client can fix
// the request.
type InvalidProductError struct {
	ProductID int
}

func (e *InvalidProductError) Error() string {
	return fmt.Sprintf("product %d does not exist", e.ProductID)
}
