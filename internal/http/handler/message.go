package handler

const (
	oopsErr = "Oops! Something went wrong. Please try again later."

	detailInvalidToken   = "API Token not found or not active"
	detailUserNotFound   = "User not found"
	detailEmailTaken     = "Email already registered"
	detailUserInactive   = "User is not active"
	detailInternalServer = "Internal server error"
)

// ErrorResponse is the body of every non 2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
