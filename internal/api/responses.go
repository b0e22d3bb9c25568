package api

type ErrorResponse struct {
	Error string `json:"error" example:"algo salió mal"`
}

type DetailResponse struct {
	Detail string `json:"detail" example:"ok"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
