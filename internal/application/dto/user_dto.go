package dto

// AuthRequest entrada del endpoint de auth. Action decide register o login;
// password viaja en texto y se hashea en el caso de uso.
type AuthRequest struct {
	Action   string `json:"action" validate:"required,oneof=register login"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"omitempty,max=200"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuthResponse salida de registro y login.
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
