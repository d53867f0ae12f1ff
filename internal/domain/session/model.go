package session

import (
	"encoding/json"
	"fmt"
)

// Role is the access level of the current session.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleClient Role = "client"
)

// Session is the single active identity for this process: either the
// administrator, or a client bound to one client identifier. The role is
// the discriminant; ClientID is only meaningful for RoleClient.
type Session struct {
	Role     Role
	ClientID string
}

// Admin returns an administrator session.
func Admin() Session {
	return Session{Role: RoleAdmin}
}

// Client returns a session bound to one client identifier.
func Client(clientID string) Session {
	return Session{Role: RoleClient, ClientID: clientID}
}

// IsAdmin reports whether the session holds the administrator role.
func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// IsClient reports whether the session holds the client role.
func (s Session) IsClient() bool {
	return s.Role == RoleClient
}

type wireSession struct {
	Role     Role   `json:"role"`
	ClientID string `json:"clientId,omitempty"`
}

// MarshalJSON writes the tagged-union shape: {"role":"admin"} or
// {"role":"client","clientId":"..."}.
func (s Session) MarshalJSON() ([]byte, error) {
	w := wireSession{Role: s.Role}
	if s.Role == RoleClient {
		w.ClientID = s.ClientID
	}
	return json.Marshal(w)
}

// UnmarshalJSON rejects payloads with an unknown role or a client role
// without a client id, so a malformed stored blob degrades to no session
// instead of a half-valid one.
func (s *Session) UnmarshalJSON(data []byte) error {
	var w wireSession
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Role {
	case RoleAdmin:
		*s = Admin()
	case RoleClient:
		if w.ClientID == "" {
			return fmt.Errorf("%w: client session without client id", ErrInvalidSession)
		}
		*s = Client(w.ClientID)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrInvalidSession, w.Role)
	}
	return nil
}
