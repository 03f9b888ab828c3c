package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El motor analítico en sí es total: datos insuficientes o productos sin
// historial son resultados válidos, no errores. Estos sentinelas cubren la
// capa de aplicación (snapshots, búsquedas por código).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)
