package service

// The error taxonomy every core operation fails with. Handlers map each
// type to its transport status: AuthenticationError 401, AuthorizationError
// 403, NotFoundError 404, APIKeyError 401, ConflictError 409.

type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string { return e.Reason }

type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string { return e.Reason }

type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string { return e.Entity + " not found" }

type APIKeyError struct {
	Reason string
}

func (e *APIKeyError) Error() string { return e.Reason }

type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
