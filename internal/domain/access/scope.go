package access

import "github.com/BruksfildServices01/barbercraft/internal/models"

// Scope is who a query runs for. Non-admin scopes only see their own rows.
type Scope struct {
	UserID uint
	Role   string
}

func For(userID uint, role string) Scope {
	return Scope{UserID: userID, Role: role}
}

// System sees every row; used after a write to read back the result.
func System() Scope {
	return Scope{Role: models.RoleAdmin}
}

func (s Scope) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

// OwnerFilter returns the user id rows must match, or nil for admins.
func (s Scope) OwnerFilter() *uint {
	if s.IsAdmin() {
		return nil
	}
	id := s.UserID
	return &id
}
