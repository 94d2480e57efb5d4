package domain

// Role is the job function a user holds. OWNER and MANAGER are scoped to the
// stations they are assigned to; ADMINISTRATOR is platform-wide.
type Role string

const (
	RoleOwner         Role = "OWNER"
	RoleManager       Role = "MANAGER"
	RoleOperator      Role = "OPERATOR"
	RoleFinance       Role = "FINANCE"
	RoleAdministrator Role = "ADMINISTRATOR"
)

// IsValid reports whether the role is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleManager, RoleOperator, RoleFinance, RoleAdministrator:
		return true
	}
	return false
}

// Actor is the authenticated identity performing an operation, as extracted
// from the token claims by the permission gate. The core records the role
// for audit; it never re-derives role membership itself.
type Actor struct {
	UserID       string
	Role         Role
	GasStationID *string
}

// User represents an authenticated person. GasStationID is nil for
// platform-wide roles.
type User struct {
	UserID       string  `json:"userID"` // Primary key (UUID)
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	PasswordHash string  `json:"-"`
	Role         Role    `json:"role"`
	GasStationID *string `json:"gasStationID"` // Station assignment, nil for ADMINISTRATOR
	IsActive     bool    `json:"isActive"`
	AuditFields
}
