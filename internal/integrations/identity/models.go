package identity

// Role роль пользователя в системе
type Role string

const (
	RoleClient Role = "client"
	RoleAdmin  Role = "admin"
)

// User пользователь, полученный из IdentityService
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// IsAdmin проверяет, что пользователь — администратор (барбер)
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
