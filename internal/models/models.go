package models

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

type Role string

const (
	RoleStudent      Role = "student"
	RoleProfessional Role = "professional"
	RoleAdmin        Role = "admin"
)

// ParseRole maps a request string onto a known role. Role is fixed at
// registration; no route changes it afterwards.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent, RoleProfessional, RoleAdmin:
		return Role(s), true
	}
	return "", false
}
