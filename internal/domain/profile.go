package domain

import "time"

// Role enumerates actor roles. Only teachers may create items and mark
// them collected.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleMember  Role = "member"
)

// Profile is the actor that owns uploaded items. It is linked to a
// staff credential via CredentialID; login authority stays with the
// credential record.
type Profile struct {
	ID           string
	Name         string
	Email        *string
	Role         Role
	CredentialID *string
	CreatedAt    time.Time
}

// IsTeacher reports whether the profile holds write access.
func (p *Profile) IsTeacher() bool {
	return p != nil && p.Role == RoleTeacher
}
