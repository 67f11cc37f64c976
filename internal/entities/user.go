package entities

// User is an authentication identity, distinct from TeamMember.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Email    string `json:"email"`
}
