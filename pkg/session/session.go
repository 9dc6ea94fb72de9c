// Package session manages the local user accounts and the signed-in
// session. The session is an explicit value loaded from and saved to the
// blob store; nothing is cached between calls.
package session

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"tableflip.dev/deck/pkg/store"
)

// Storage keys.
const (
	KeyUsers          = "users"
	KeyCurrentUser    = "currentUser"
	KeySecurityEvents = "securityEvents"
)

const maxSecurityEvents = 100

var (
	ErrMissingField       = errors.New("session: required field missing")
	ErrPasswordMismatch   = errors.New("session: passwords do not match")
	ErrWeakPassword       = errors.New("session: password must be at least 8 characters with a letter and a digit")
	ErrUserExists         = errors.New("session: username already taken")
	ErrInvalidCredentials = errors.New("session: invalid username or password")
	ErrNotSignedIn        = errors.New("session: not signed in")
)

// User is a stored account.
type User struct {
	Username     string    `json:"username"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"passwordHash"`
	Created      time.Time `json:"created"`
}

// Session is the signed-in user.
type Session struct {
	Username string    `json:"username"`
	Name     string    `json:"name,omitempty"`
	Started  time.Time `json:"started"`
}

// SecurityEvent is an audit log entry.
type SecurityEvent struct {
	Type     string    `json:"type"`
	Username string    `json:"username"`
	At       time.Time `json:"at"`
}

// RegisterRequest holds the sign-up form.
type RegisterRequest struct {
	Username string
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Service signs users in and out.
type Service struct {
	blobs store.Blobs
	now   func() time.Time
	cost  int
}

// NewService returns a service over b.
func NewService(b store.Blobs) *Service {
	return &Service{blobs: b, now: time.Now, cost: bcrypt.DefaultCost}
}

// Register validates req, stores the new user and signs them in.
func (s *Service) Register(req RegisterRequest) (Session, error) {
	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		return Session{}, ErrMissingField
	}
	if req.Password != req.Confirm {
		return Session{}, ErrPasswordMismatch
	}
	if !strongEnough(req.Password) {
		return Session{}, ErrWeakPassword
	}

	users, err := s.users()
	if err != nil {
		return Session{}, err
	}
	if _, ok := find(users, req.Username); ok {
		return Session{}, ErrUserExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return Session{}, fmt.Errorf("session: hash password: %w", err)
	}
	users = append(users, User{
		Username:     req.Username,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: string(hash),
		Created:      s.now().UTC(),
	})
	if err := store.SaveJSON(s.blobs, KeyUsers, users); err != nil {
		return Session{}, err
	}
	s.record("register", req.Username)
	return s.start(users[len(users)-1])
}

// Login checks the credentials and signs the user in.
func (s *Service) Login(username, password string) (Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, ErrMissingField
	}
	users, err := s.users()
	if err != nil {
		return Session{}, err
	}
	u, ok := find(users, username)
	if !ok || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		s.record("login_failed", username)
		return Session{}, ErrInvalidCredentials
	}
	s.record("login", username)
	return s.start(u)
}

// Logout ends the current session.
func (s *Service) Logout() error {
	cur, err := s.Current()
	if err != nil {
		return err
	}
	if err := s.blobs.Erase(KeyCurrentUser); err != nil {
		return err
	}
	s.record("logout", cur.Username)
	return nil
}

// Current loads the signed-in session. A malformed session blob is erased
// and reported as signed out.
func (s *Service) Current() (Session, error) {
	var cur Session
	err := store.LoadJSON(s.blobs, KeyCurrentUser, &cur)
	switch {
	case errors.Is(err, store.ErrMalformed):
		if err := s.blobs.Erase(KeyCurrentUser); err != nil {
			return Session{}, err
		}
		return Session{}, ErrNotSignedIn
	case errors.Is(err, store.ErrNotFound):
		return Session{}, ErrNotSignedIn
	case err != nil:
		return Session{}, err
	}
	if cur.Username == "" {
		if err := s.blobs.Erase(KeyCurrentUser); err != nil {
			return Session{}, err
		}
		return Session{}, ErrNotSignedIn
	}
	return cur, nil
}

// Events returns the security log, oldest first.
func (s *Service) Events() []SecurityEvent {
	var events []SecurityEvent
	if err := store.LoadJSON(s.blobs, KeySecurityEvents, &events); err != nil {
		return nil
	}
	return events
}

func (s *Service) start(u User) (Session, error) {
	sess := Session{Username: u.Username, Name: u.Name, Started: s.now().UTC()}
	if err := store.SaveJSON(s.blobs, KeyCurrentUser, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// users returns the registered accounts. A missing or malformed blob reads
// as no accounts; any other read error is returned.
func (s *Service) users() ([]User, error) {
	var users []User
	err := store.LoadJSON(s.blobs, KeyUsers, &users)
	switch {
	case err == nil:
		return users, nil
	case errors.Is(err, store.ErrNotFound), errors.Is(err, store.ErrMalformed):
		return nil, nil
	default:
		return nil, fmt.Errorf("session: load users: %w", err)
	}
}

func (s *Service) record(kind, username string) {
	events := append(s.Events(), SecurityEvent{Type: kind, Username: username, At: s.now().UTC()})
	if len(events) > maxSecurityEvents {
		events = events[len(events)-maxSecurityEvents:]
	}
	// The audit log is best effort.
	_ = store.SaveJSON(s.blobs, KeySecurityEvents, events)
}

func find(users []User, username string) (User, bool) {
	for _, u := range users {
		if strings.EqualFold(u.Username, username) {
			return u, true
		}
	}
	return User{}, false
}

func strongEnough(pw string) bool {
	if len(pw) < 8 {
		return false
	}
	var letter, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsLetter(r):
			letter = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return letter && digit
}
