package models

import "time"

// Roles a user account can hold. Every authenticated request carries
// exactly one of these.
const (
	RoleLandlord = "landlord"
	RoleRenter   = "renter"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Never expose in JSON
	Role         string    `json:"role"` // landlord or renter
	TOTPSecret   string    `json:"-"`
	TOTPEnabled  bool      `json:"totp_enabled"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the verified (subject, role) pair attached to every request.
// It is passed explicitly into every lease-mutating call; nothing reads
// auth state from globals.
type Identity struct {
	UserID int
	Role   string
}

// SignupRequest represents the request body for signup
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	TOTPCode string `json:"totp_code,omitempty"` // required when 2FA is enabled
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// TOTPSetupResponse carries the generated secret and QR code for enrolment
type TOTPSetupResponse struct {
	Secret      string `json:"secret"`
	QRCode      string `json:"qr_code"`
	Issuer      string `json:"issuer"`
	AccountName string `json:"account_name"`
}
