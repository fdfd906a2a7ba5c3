// Package auth keeps the console's login credentials. Passwords are stored
// and compared as plaintext. The hospital registry never consults this
// store; roles only gate which console menus are shown.
package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Role is the console dashboard a user lands on after login.
type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleDoctor  Role = "Doctor"
	RoleNurse   Role = "Nurse"
	RolePatient Role = "Patient"
)

var validRoles = map[Role]bool{
	RoleAdmin: true, RoleDoctor: true, RoleNurse: true, RolePatient: true,
}

var (
	ErrUsernameRequired   = errors.New("username is required")
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrSessionNotFound    = errors.New("session not found")
)

// UserCredentials is one login entry.
type UserCredentials struct {
	username string
	password string
	role     Role
}

func (u *UserCredentials) Username() string { return u.username }
func (u *UserCredentials) Role() Role       { return u.role }

// Authenticate reports whether both username and password match.
func (u *UserCredentials) Authenticate(username, password string) bool {
	return u.username == username && u.password == password
}

// Session is an active console login.
type Session struct {
	ID        uuid.UUID
	Username  string
	Role      Role
	StartedAt time.Time
}

// Store maps usernames to credentials and tracks open sessions.
// Not safe for concurrent use.
type Store struct {
	users    map[string]*UserCredentials
	sessions map[uuid.UUID]*Session
	logger   zerolog.Logger
	now      func() time.Time
}

func NewStore(logger zerolog.Logger) *Store {
	return &Store{
		users:    make(map[string]*UserCredentials),
		sessions: make(map[uuid.UUID]*Session),
		logger:   logger.With().Str("component", "auth").Logger(),
		now:      time.Now,
	}
}

// AddUser registers a new username. Existing usernames are not replaced.
func (s *Store) AddUser(username, password string, role Role) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if !validRoles[role] {
		return ErrInvalidRole
	}
	if _, ok := s.users[username]; ok {
		return ErrUserExists
	}
	s.users[username] = &UserCredentials{username: username, password: password, role: role}
	s.logger.Debug().Str("username", username).Str("role", string(role)).Msg("user added")
	return nil
}

// Authenticate returns the user's role when the credentials match.
func (s *Store) Authenticate(username, password string) (Role, bool) {
	u, ok := s.users[username]
	if !ok || !u.Authenticate(username, password) {
		return "", false
	}
	return u.role, true
}

// Login authenticates and opens a session.
func (s *Store) Login(username, password string) (*Session, error) {
	role, ok := s.Authenticate(username, password)
	if !ok {
		s.logger.Warn().Str("username", username).Msg("login failed")
		return nil, ErrInvalidCredentials
	}
	sess := &Session{ID: uuid.New(), Username: username, Role: role, StartedAt: s.now()}
	s.sessions[sess.ID] = sess
	s.logger.Info().Str("username", username).Str("session_id", sess.ID.String()).Msg("login")
	return sess, nil
}

// Logout closes a session.
func (s *Store) Logout(id uuid.UUID) error {
	sess, ok := s.sessions[id]
	if !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info().Str("username", sess.Username).Str("session_id", id.String()).Msg("logout")
	return nil
}

// ResetPassword replaces a user's password. Open sessions stay open.
func (s *Store) ResetPassword(username, newPassword string) error {
	u, ok := s.users[username]
	if !ok {
		return ErrUserNotFound
	}
	u.password = newPassword
	s.logger.Info().Str("username", username).Msg("password reset")
	return nil
}

// ActiveSessions is the number of open sessions.
func (s *Store) ActiveSessions() int {
	return len(s.sessions)
}
