package services

// ServiceError is a typed error carrying the HTTP status code the controller
// should respond with.
type ServiceError struct {
	StatusCode int
	Message    string
	Code       string // optional stable machine code
}

func (e *ServiceError) Error() string { return e.Message }
