package dto

import "time"

// RegisterRequest entrada para registro: email y password; role es opcional
// (el usuario puede elegir panel después con /users/role).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=owner cashier"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AssignRoleRequest entrada para asignar o cambiar el rol del usuario autenticado.
type AssignRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=owner cashier"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AssignRoleResponse devuelve el usuario actualizado y un token fresco con el
// rol nuevo, para que el cliente no tenga que volver a iniciar sesión.
type AssignRoleResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
