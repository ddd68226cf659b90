package domain

// Role платформенная роль пользователя, приходит от шлюза вместе с идентификатором
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// ParseRole converts a string into a Role, validating it
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleCustomer, RoleAdmin:
		return Role(s), true
	}
	return "", false
}

// Actor is the request-scoped identity passed explicitly into every operation.
// The core never reads identity from ambient state.
type Actor struct {
	ID   int64
	Role Role
}

// IsAdmin returns true if the actor is a platform admin
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
