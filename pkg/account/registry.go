package account

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Registry tracks the active users and moderators for a card room.
// The counters live here, owned by whoever constructed the registry,
// instead of in hidden package-level state.
type Registry struct {
	mu          sync.Mutex
	activeUsers int
	activeMods  int
}

// NewRegistry returns an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Register admits a user, assigning an ID
func (r *Registry) Register(u *User) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u.ID = uuid.New()
	r.activeUsers++
}

// RegisterModerator admits a moderator, counting them as both a user and a moderator
func (r *Registry) RegisterModerator(m *Moderator) {
	r.Register(&m.User)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.activeMods++
}

// Logout removes a user from the active count and returns a statement
func (r *Registry) Logout(u *User) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.activeUsers--
	return fmt.Sprintf("%s has logged out", u.First)
}

// ActiveUsers returns the number of active users, moderators included
func (r *Registry) ActiveUsers() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.activeUsers
}

// ActiveModerators returns the number of active moderators
func (r *Registry) ActiveModerators() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.activeMods
}

func (r *Registry) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return fmt.Sprintf("%d active users (%d moderators)", r.activeUsers, r.activeMods)
}
