package dto

// RegisterRequest represents an open registration request. Branch and
// group are required depending on the requested role, enforced by the
// auth service rather than binding tags.
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Role     string `form:"role" json:"role" binding:"required"`
	Branch   string `form:"branch" json:"branch"`
	Group    string `form:"group" json:"group"`
}

// LoginRequest represents OAuth2 password-style login credentials
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse represents the issued bearer token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
}
