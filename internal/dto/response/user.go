package response

import (
	"time"

	"concert-venue/internal/data/entity"
)

// UserResponse never carries the password or its hash
type UserResponse struct {
	ID        int64      `json:"id"`
	Email     string     `json:"email"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

type UserEnvelope struct {
	User UserResponse `json:"user"`
}

type MessageResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
	}
}

func AuthToResponse(user *entity.User, token string, expiresAt time.Time) UserResponse {
	resp := UserToResponse(user)
	resp.Token = token
	if !expiresAt.IsZero() {
		resp.ExpiresAt = &expiresAt
	}
	return resp
}
