package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrForeignKey      = errors.New("referencia a un recurso inexistente")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("credenciales inválidas")
	ErrInactiveUser    = errors.New("usuario inactivo")
	ErrStoreUnavailable = errors.New("almacén de datos no disponible")
)
