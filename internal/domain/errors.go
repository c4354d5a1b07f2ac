package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrItemNotFound       = errors.New("artículo no encontrado en el inventario")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrRoleNotAssigned    = errors.New("el usuario no tiene rol asignado")
	ErrInvalidCredentials = errors.New("nombre de tienda o contraseña incorrectos")
	ErrSessionExpired     = errors.New("sesión de tienda inválida o expirada")
	ErrInsufficientStock  = errors.New("stock insuficiente")
)
