package auth

import (
	"time"

	"gearshare/internal/domain"
)

type SignupRequest struct {
	Username string  `json:"username" validate:"required,notblank,max=255"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Location *string `json:"location,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserPublic struct {
	Username           string    `json:"username"`
	Email              string    `json:"email"`
	Role               string    `json:"role"`
	Location           *string   `json:"location,omitempty"`
	VerificationStatus bool      `json:"verification_status"`
	CreatedAt          time.Time `json:"created_at"`
}

func toPublic(u *domain.User) UserPublic {
	return UserPublic{
		Username:           u.Username,
		Email:              u.Email,
		Role:               u.Role,
		Location:           u.Location,
		VerificationStatus: u.VerificationStatus,
		CreatedAt:          u.CreatedAt,
	}
}

type AuthResponse struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        UserPublic `json:"user"`
}
