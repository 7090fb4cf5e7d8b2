package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// OperationResponse respuesta para operaciones con contrato booleano.
type OperationResponse struct {
	Success bool `json:"success"`
}
