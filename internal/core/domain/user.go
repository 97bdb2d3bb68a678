package domain

// Role is the access level of a user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// User is a registered account. PasswordHash is persisted under "password"
// so existing data files keep loading.
type User struct {
	Username     string `json:"username" validate:"required"`
	PasswordHash string `json:"password"`
	Role         Role   `json:"role"`
}

// Identity is the authenticated caller attached to a request.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// Authenticated reports whether the identity belongs to a logged-in user.
func (i Identity) Authenticated() bool {
	return i.Username != ""
}

func (i Identity) IsAdmin() bool {
	return i.Authenticated() && i.Role == RoleAdmin
}
