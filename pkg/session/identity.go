package session

// Identity is the per-request resolved caller. The zero value is the
// unauthenticated identity.
type Identity struct {
	Address string `json:"address,omitempty"`
}

// Authenticated reports whether a verified address is present.
func (i Identity) Authenticated() bool {
	return i.Address != ""
}
