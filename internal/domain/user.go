package domain

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleStaff    Role = "Staff"
	RoleCustomer Role = "Customer"
)

// User is an account that can sign in or appear as a rental customer.
// Passwords are stored as entered; the demo credential table is not a
// security boundary.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
