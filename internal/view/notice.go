package view

import (
	"fmt"
	"sync"
	"time"
)

// Transient feedback lifetimes, matching the storefront's revert timers.
const (
	AddedFeedbackTTL = 1000 * time.Millisecond
	ProfileSavedTTL  = 1500 * time.Millisecond
)

// Notices holds short-lived UI messages keyed by surface. A repeated
// Set overwrites the previous entry and its deadline, so the label
// reverts when the latest timer would have fired (last write wins).
type Notices struct {
	mu      sync.Mutex
	now     func() time.Time
	entries map[string]notice
}

type notice struct {
	message string
	expires time.Time // zero: no expiry, consumed via Take
}

func NewNotices() *Notices {
	return &Notices{now: time.Now, entries: make(map[string]notice)}
}

// Set records a message. A non-positive ttl means the notice has no
// deadline and lives until taken.
func (n *Notices) Set(key, message string, ttl time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	e := notice{message: message}
	if ttl > 0 {
		e.expires = n.now().Add(ttl)
	}
	n.entries[key] = e
}

// Get returns the message for key if it has not expired. Expired
// entries are dropped on access.
func (n *Notices) Get(key string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	e, ok := n.entries[key]
	if !ok {
		return "", false
	}
	if !e.expires.IsZero() && n.now().After(e.expires) {
		delete(n.entries, key)
		return "", false
	}
	return e.message, true
}

// Take returns the message for key and removes it, for one-shot flash
// messages such as the checkout outcome.
func (n *Notices) Take(key string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	e, ok := n.entries[key]
	if !ok {
		return "", false
	}
	delete(n.entries, key)
	if !e.expires.IsZero() && n.now().After(e.expires) {
		return "", false
	}
	return e.message, true
}

// AddedKey scopes "Added!" feedback to one product card per session.
func AddedKey(sessionID string, productID int64) string {
	return fmt.Sprintf("added:%s:%d", sessionID, productID)
}

// ProfileKey scopes the profile-saved confirmation per session.
func ProfileKey(sessionID string) string {
	return "profile:" + sessionID
}

// CheckoutKey scopes the checkout outcome flash per session.
func CheckoutKey(sessionID string) string {
	return "checkout:" + sessionID
}
