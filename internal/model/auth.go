package model

// AuthUser is the authenticated identity extracted from a bearer token
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse is returned from login and signup
type TokenResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}
