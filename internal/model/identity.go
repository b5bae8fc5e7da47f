package model

// ContextKey is the type for request-context keys owned by this module.
type ContextKey string

// UserIDKey holds the opaque user id extracted from the bearer token. The
// id is never inspected beyond being a non-empty string; it namespaces all
// persisted data.
const UserIDKey ContextKey = "userID"
