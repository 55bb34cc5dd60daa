package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Actor is the identity resolved once per request by the identity
// collaborator. The engine never inspects credentials; it only compares
// the actor id against the transaction's participants and consults the
// role claim for privileged operations.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
