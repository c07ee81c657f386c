// internal/services/errors.go
package services

import "errors"

// Sentinel errors returned by the store services. Handlers map them to HTTP
// statuses with errors.Is: not-found errors to 404, conflicts to 409,
// validation errors to 400.
var (
	ErrBrandNotFound  = errors.New("brand not found")
	ErrBrandNameTaken = errors.New("brand name already exists")
	ErrUnknownBrand   = errors.New("brand does not match an active brand")

	ErrProductNotFound = errors.New("product not found")
	ErrSizeNotFound    = errors.New("size not found for product")
	ErrDuplicateSize   = errors.New("size already exists for this product")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("order status transition not allowed")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnknownBulkAction  = errors.New("unknown bulk action")
)
