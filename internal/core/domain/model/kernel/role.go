package kernel

// Role is the name of an authorization role held by a user.
type Role string

// String returns the role name.
func (r Role) String() string {
	return string(r)
}
