package entity

// Roles de usuario reconocidos por la aplicación.
const (
	RoleAdmin      = "admin"
	RoleSupervisor = "supervisor"
	RoleUser       = "user"
)

// User representa un usuario del sistema (solicitante o autorizador).
type User struct {
	ID         int64
	EmployeeID string // número de empleado
	Name       string
	Email      string
	Role       string
	Active     bool
}
