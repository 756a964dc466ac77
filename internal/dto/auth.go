package dto

// --- Auth DTOs ---

// RegisterChurchRequest defines data for registering a church with its first admin.
type RegisterChurchRequest struct {
	ChurchName string `json:"churchName" binding:"required,min=2,max=120"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest defines the credentials for a password login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
// Church and Branch describe the tenant the user was resolved into.
type LoginResponse struct {
	Token  string          `json:"token"`
	User   UserResponse    `json:"user"`
	Church *ChurchResponse `json:"church,omitempty"`
	Branch *BranchResponse `json:"branch,omitempty"`
}

// RefreshTokenResponse represents the response for a successful token refresh.
type RefreshTokenResponse struct {
	Token string `json:"token"`
}
