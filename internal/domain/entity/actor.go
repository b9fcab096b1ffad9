package entity

// Actor identifica a quien ejecuta una operación (tomado del JWT).
type Actor struct {
	UserID   string
	Username string
	Role     string
}

// IsAdmin indica capacidad de administrador: precios y catálogo completo.
func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// CanSeePrice es falso solo para empleados.
func (a Actor) CanSeePrice() bool {
	return a.Role == RoleAdmin || a.Role == RoleProjectUser
}

// CanEditProducts permite alta/edición de productos y carga masiva.
func (a Actor) CanEditProducts() bool {
	return a.Role == RoleAdmin || a.Role == RoleProjectUser
}
