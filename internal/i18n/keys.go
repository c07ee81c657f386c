// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthLoginSuccess       = "auth.login_success"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// Brands
	KeyBrandCreated   = "brand.created"
	KeyBrandUpdated   = "brand.updated"
	KeyBrandDeleted   = "brand.deleted"
	KeyBrandNotFound  = "brand.not_found"
	KeyBrandNameTaken = "brand.name_taken"
	KeyBrandUnknown   = "brand.unknown"

	// Products
	KeyProductCreated    = "product.created"
	KeyProductUpdated    = "product.updated"
	KeyProductDeleted    = "product.deleted"
	KeyProductNotFound   = "product.not_found"
	KeyProductDuplicated = "product.duplicated"

	// Sizes
	KeySizeAdded    = "size.added"
	KeySizeUpdated  = "size.updated"
	KeySizeRemoved  = "size.removed"
	KeySizeNotFound = "size.not_found"
	KeySizeConflict = "size.conflict"

	// Orders
	KeyOrderCreated           = "order.created"
	KeyOrderNotFound          = "order.not_found"
	KeyOrderStatusUpdated     = "order.status_updated"
	KeyOrderInvalidTransition = "order.invalid_transition"

	// Bulk actions
	KeyBulkCompleted     = "bulk.completed"
	KeyBulkUnknownAction = "bulk.unknown_action"

	// Files
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
)
