package common

// AuthorizationHeaderName is the HTTP header that carries the access token
// on requests to protected endpoints.
const AuthorizationHeaderName = "Authorization"

// BearerSchemePrefix is the scheme marker expected in front of the token,
// including the separating space: "Bearer <token>".
const BearerSchemePrefix = "Bearer "
