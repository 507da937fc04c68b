package models

// AdminUser is a pre-provisioned credential record. This system only reads
// it at login; it is never created or mutated here beyond last_login.
type AdminUser struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
