// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	utils.SetJWTSecret("test-secret")
	svc := NewAuthService(db, 1)

	admin := &models.AdminUser{Username: "admin", Email: "admin@example.com"}
	require.NoError(t, admin.SetPassword("correct-horse"))
	require.NoError(t, db.Create(admin).Error)

	auth, err := svc.Login(&LoginRequest{Username: "admin", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, "Bearer", auth.TokenType)
	assert.Equal(t, 3600, auth.ExpiresIn)
	require.NotNil(t, auth.User.LastLoginAt)

	claims, err := utils.ValidateJWT(auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.UserID)

	_, err = svc.Login(&LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(&LoginRequest{Username: "ghost", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
