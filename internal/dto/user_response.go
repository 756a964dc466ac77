package dto

import "github.com/parishledger/parishledger/internal/core/domain"

type UserResponse struct {
	UserID   string  `json:"userID"`
	Email    string  `json:"email"`
	Role     string  `json:"role"`
	ChurchID *string `json:"churchID,omitempty"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.UserID,
		Email:    user.Email,
		Role:     string(user.Role),
		ChurchID: user.ChurchID,
	}
}
