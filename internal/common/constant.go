package common

// Durable storage keys for the persisted session. All three are written
// together on login/update and removed together on logout or when the
// session is detected invalid.
const (
	StorageKeyUser   = "user"
	StorageKeyUserID = "userId"
	StorageKeyToken  = "token"
)

// AuthHeaderName is the HTTP header carrying the bearer token on
// outbound requests.
const AuthHeaderName = "Authorization"

// BearerPrefix prefixes the token value in AuthHeaderName.
const BearerPrefix = "Bearer "
