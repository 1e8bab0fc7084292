package model

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleMaintainer Role = "maintainer"
	RoleUser       Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleMaintainer, RoleUser:
		return true
	}
	return false
}

// バックエンドの /api/get_user, /api/get_users が返すユーザー。
type User struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Role    Role    `json:"role"`
	Balance float64 `json:"balance"`
}
