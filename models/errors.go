package models

// Typed errors returned by the service layer. The HTTP helper maps the
// concrete type to a status code.

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	if e.Message == "" {
		return "not found"
	}
	return e.Message
}

// ErrorInvalidOperation signals an illegal state transition or an
// unrecognized pending command.
type ErrorInvalidOperation struct {
	Message string
}

func (e ErrorInvalidOperation) Error() string {
	if e.Message == "" {
		return "invalid operation"
	}
	return e.Message
}

type ErrorConflict struct {
	Message string
}

func (e ErrorConflict) Error() string {
	if e.Message == "" {
		return "conflict"
	}
	return e.Message
}

type ErrorInternalServer struct {
	Message string
}

func (e ErrorInternalServer) Error() string {
	if e.Message == "" {
		return "internal server error"
	}
	return e.Message
}
