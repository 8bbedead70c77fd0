package ccapi

import (
	"sync/atomic"
)

type sessionState struct {
	accessToken string
	clientID    string
}

// Session carries the authentication state attached to every request after
// a successful login. Token and client ID are replaced together. There is no
// mutual exclusion between logins: concurrent logins race and the last one
// to complete wins.
type Session struct {
	state atomic.Pointer[sessionState]
}

func NewSession() *Session {
	return &Session{}
}

// NewSessionWithToken returns a session restored from an earlier login
func NewSessionWithToken(accessToken string, clientID string) *Session {
	s := &Session{}
	s.set(accessToken, clientID)
	return s
}

func (s *Session) load() sessionState {
	if s == nil {
		return sessionState{}
	}
	if st := s.state.Load(); st != nil {
		return *st
	}
	return sessionState{}
}

func (s *Session) AccessToken() string {
	return s.load().accessToken
}

func (s *Session) ClientID() string {
	return s.load().clientID
}

// LoggedIn reports whether the session holds a token. The token may still
// have been expired by the remote end.
func (s *Session) LoggedIn() bool {
	return s.AccessToken() != ""
}

func (s *Session) set(accessToken string, clientID string) {
	s.state.Store(&sessionState{accessToken: accessToken, clientID: clientID})
}
