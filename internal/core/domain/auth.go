package domain

// Role is the access level of an authenticated caller.
type Role string

// Known roles.
const (
	RoleAdmin  Role = "admin"
	RoleViewer Role = "viewer"
)

// Identity is the authenticated caller as reported by the session layer.
// Credential handling lives outside this module; only the outcome is seen here.
type Identity struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// CanRead reports whether the identity may list, get, search and chat.
// Any authenticated identity may read.
func (i Identity) CanRead() bool {
	return i.Email != ""
}

// CanWrite reports whether the identity may create, update, delete,
// import and export documents.
func (i Identity) CanWrite() bool {
	return i.CanRead() && i.Role == RoleAdmin
}
