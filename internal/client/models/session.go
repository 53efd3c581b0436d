package models

// State is the authentication state of the client.
type State int

const (
	StateAnonymous State = iota
	StateUser
	StateAdmin
)

func (s State) String() string {
	switch s {
	case StateUser:
		return "authenticated-user"
	case StateAdmin:
		return "authenticated-admin"
	default:
		return "anonymous"
	}
}

// Session is an immutable snapshot of the stored identity. IsAdmin is the
// result of the last role probe and is only a display hint.
type Session struct {
	Username string
	Token    string
	IsAdmin  bool
}

func (s Session) Authenticated() bool { return s.Username != "" }

func (s Session) State() State {
	switch {
	case !s.Authenticated():
		return StateAnonymous
	case s.IsAdmin:
		return StateAdmin
	default:
		return StateUser
	}
}
