package middleware

// Context keys shared between middleware and handlers.
const (
	// ContextKeyUserID is the authenticated user's ID (string).
	ContextKeyUserID = "user_id"
	// ContextKeyUserEmail is the authenticated user's email, when the token carries one.
	ContextKeyUserEmail = "user_email"
	// ContextKeyUserRole is the application role resolved during RBAC checks.
	ContextKeyUserRole = "user_role"
	// RequestIDKey is the key used to store the request ID in the gin context.
	RequestIDKey = "request_id"
)
