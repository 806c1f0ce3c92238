package session

// Identity is the authenticated principal bound to a session token.
type Identity struct {
	UserID      uint   `json:"user_id"`
	Nome        string `json:"nome"`
	TipoUsuario string `json:"tipo_usuario"`
}

// Store keeps server-side sessions keyed by an opaque client-held token.
// Sessions live entirely on this side: invalidating a token here ends the
// session immediately, regardless of what the client still holds.
type Store interface {
	// Create binds the identity to a fresh opaque token and returns it.
	Create(identity Identity) (string, error)
	// Get resolves a token. A missing or expired token is (zero, false, nil);
	// only backend trouble produces an error.
	Get(token string) (Identity, bool, error)
	// Delete invalidates a token. Deleting an unknown token is not an error.
	Delete(token string) error
}
