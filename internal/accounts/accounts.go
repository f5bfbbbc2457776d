// Package accounts keeps the session's login credentials in memory. Passwords
// are stored as salted HMAC-SHA256 digests, never as entered.
package accounts

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	ErrEmptyField         = errors.New("username and password are required")
	ErrUserExists         = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// Registry is an in-memory credential map
type Registry struct {
	mu    sync.RWMutex
	salt  []byte
	users map[string][]byte // username -> digest
	order []string
}

// NewRegistry creates an empty registry. An empty salt is replaced with a random one.
func NewRegistry(salt string) (*Registry, error) {
	s := []byte(salt)
	if len(s) == 0 {
		s = make([]byte, 32)
		if _, err := rand.Read(s); err != nil {
			return nil, fmt.Errorf("failed to generate salt: %w", err)
		}
	}
	return &Registry{
		salt:  s,
		users: make(map[string][]byte),
	}, nil
}

func (r *Registry) digest(username, password string) []byte {
	h := hmac.New(sha256.New, r.salt)
	h.Write([]byte(username))
	h.Write([]byte{0})
	h.Write([]byte(password))
	return h.Sum(nil)
}

func normalize(username, password string) (string, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return "", "", ErrEmptyField
	}
	return username, password, nil
}

// Register adds a new account
func (r *Registry) Register(username, password string) error {
	username, password, err := normalize(username, password)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[username]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, username)
	}
	r.users[username] = r.digest(username, password)
	r.order = append(r.order, username)
	return nil
}

// Authenticate checks a username/password pair
func (r *Registry) Authenticate(username, password string) error {
	username, password, err := normalize(username, password)
	if err != nil {
		return err
	}

	r.mu.RLock()
	stored, ok := r.users[username]
	r.mu.RUnlock()

	// Hash even for unknown users so both failures cost the same
	got := r.digest(username, password)
	if !ok || !hmac.Equal(stored, got) {
		return ErrInvalidCredentials
	}
	return nil
}

// Usernames lists registered accounts in registration order
func (r *Registry) Usernames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.order...)
}

// Fingerprint returns a short hex id for username's stored digest, for logs
func (r *Registry) Fingerprint(username string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.users[username]
	if !ok {
		return ""
	}
	return hex.EncodeToString(d[:4])
}
