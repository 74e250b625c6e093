package domain

// IdentityKind distinguishes authenticated users from anonymous visitors
type IdentityKind string

const (
	IdentityAuthenticated IdentityKind = "user"
	IdentityAnonymous     IdentityKind = "session"
)

// Identity is the key under which a favorite set is tracked: either an
// authenticated user's stable ID or an anonymous visitor's session ID.
// It is resolved once per request by middleware and threaded explicitly.
type Identity struct {
	Kind IdentityKind `json:"kind"`
	ID   string       `json:"id"`
}

// UserIdentity returns an authenticated identity
func UserIdentity(userID string) Identity {
	return Identity{Kind: IdentityAuthenticated, ID: userID}
}

// SessionIdentity returns an anonymous identity
func SessionIdentity(sessionID string) Identity {
	return Identity{Kind: IdentityAnonymous, ID: sessionID}
}

// IsAnonymous reports whether the identity is session-based
func (i Identity) IsAnonymous() bool {
	return i.Kind == IdentityAnonymous
}

// IsZero reports whether the identity is unset
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// Key returns the map key form ("user:42" / "session:anon-1")
func (i Identity) Key() string {
	return string(i.Kind) + ":" + i.ID
}
