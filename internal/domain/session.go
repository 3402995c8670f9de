package domain

// Session is the authenticated admin's credential pair. It exists only
// while logged in. The token is an opaque bearer credential — never
// parsed or validated client-side; a stale token is discovered lazily
// when the server rejects a mutation.
type Session struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}
