package model

import "time"

type Role string

const (
	RoleDoctor   Role = "doctor"
	RolePatient  Role = "patient"
	RolePharmacy Role = "pharmacy"
)

// ValidRole reports whether s names one of the three account roles
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleDoctor, RolePatient, RolePharmacy:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserInfo is the public projection of a User returned by auth endpoints
type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

func (u *User) Info() UserInfo {
	return UserInfo{
		ID:    u.ID,
		Email: u.Email,
		Role:  u.Role,
		Name:  u.Name,
		Phone: u.Phone,
	}
}
