package dto

// LoginRequest represents admin login credentials.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterAdminRequest represents the security-key gated admin
// self-registration payload.
type RegisterAdminRequest struct {
	Username    string `json:"username" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FullName    string `json:"fullName" binding:"required"`
	Role        string `json:"role"`
	SecurityKey string `json:"securityKey"`
}

// AdminProfile is the redacted administrator profile returned to clients.
type AdminProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

// LoginResponse carries the credential token and the authenticated profile.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"tokenType" example:"Bearer"`
	ExpiresIn int64        `json:"expiresIn"`
	Admin     AdminProfile `json:"admin"`
}

// RegisterAdminResponse confirms a created administrator account.
type RegisterAdminResponse struct {
	AdminID int64 `json:"adminId"`
}
