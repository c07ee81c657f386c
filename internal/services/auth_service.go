// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/javlonbek/shoeshop-backend/internal/models"
	"github.com/javlonbek/shoeshop-backend/internal/utils"
)

type AuthService struct {
	db       *gorm.DB
	tokenTTL int
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string            `json:"access_token"`
	TokenType   string            `json:"token_type"`
	ExpiresIn   int               `json:"expires_in"`
	User        *models.AdminUser `json:"user"`
}

func NewAuthService(db *gorm.DB, tokenTTLHours int) *AuthService {
	return &AuthService{
		db:       db,
		tokenTTL: tokenTTLHours,
	}
}

// Login verifies the admin credentials and issues an access token. The same
// error covers unknown usernames and wrong passwords.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.AdminUser
	if err := s.db.First(&user, "username = ?", req.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	user.LastLoginAt = &now

	token, err := utils.GenerateJWT(user.ID, user.Username, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   s.tokenTTL * 3600,
		User:        &user,
	}, nil
}

func (s *AuthService) GetAdmin(id uuid.UUID) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}
