package domain

import "time"

// StaffCredential is the login authority for a staff account.
type StaffCredential struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Email        *string
	CreatedAt    time.Time
}

// PublicProfile is the credential view returned to callers. It never
// carries the password hash.
type PublicProfile struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
}

// Public strips the credential down to its shareable fields.
func (c *StaffCredential) Public() PublicProfile {
	return PublicProfile{
		ID:       c.ID,
		Username: c.Username,
		Name:     c.Name,
		Email:    c.Email,
	}
}
