package account

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/google/uuid"
)

// seniorAge is the minimum age for senior status
const seniorAge = 65

// ErrBadFullName is an error when a full name is not two space-separated parts
var ErrBadFullName = errors.New("full name must be in the format of <first> <last>")

// User is a member of the card room.
// The age field is only reachable through Age/SetAge so the clamping
// invariant holds: an age is clamped to >= 0 on every assignment.
type User struct {
	ID    uuid.UUID
	First string
	Last  string
	Email string

	age int
}

// NewUser returns a user with the age clamped to >= 0.
// The email may be empty (a guest); a non-empty email must be well-formed.
func NewUser(first, last string, age int, email string) (*User, error) {
	if email != "" {
		if err := checkmail.ValidateFormat(email); err != nil {
			return nil, err
		}
	}

	u := &User{
		First: first,
		Last:  last,
		Email: email,
	}
	u.SetAge(age)

	return u, nil
}

// UserFromString builds a user from a comma-separated "first,last,age" record
func UserFromString(s string) (*User, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed user record: %s", s)
	}

	age, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("malformed age in user record: %s", s)
	}

	return NewUser(parts[0], parts[1], age, "")
}

func (u *User) String() string {
	return fmt.Sprintf("%s is %d", u.First, u.Age())
}

// Age returns the user's age
func (u *User) Age() int {
	return u.age
}

// SetAge sets the user's age, clamping negative values to 0
func (u *User) SetAge(age int) {
	if age < 0 {
		age = 0
	}

	u.age = age
}

// FullName returns the first and last name
func (u *User) FullName() string {
	return fmt.Sprintf("%s %s", u.First, u.Last)
}

// SetFullName splits the name into first and last.
// Unlike a silent split, a name without exactly two parts is rejected.
func (u *User) SetFullName(name string) error {
	parts := strings.Split(name, " ")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ErrBadFullName
	}

	u.First, u.Last = parts[0], parts[1]
	return nil
}

// Initials returns the abbreviated name (e.g., "T.G.")
func (u *User) Initials() string {
	return fmt.Sprintf("%c.%c.", u.First[0], u.Last[0])
}

// Likes returns a statement about the user's tastes
func (u *User) Likes(thing string) string {
	return fmt.Sprintf("%s likes %s", u.First, thing)
}

// IsSenior returns true if the user is a senior
func (u *User) IsSenior() bool {
	return u.age >= seniorAge
}

// Birthday increments the user's age and returns a greeting
func (u *User) Birthday() string {
	u.age++
	return fmt.Sprintf("Happy %dth, %s", u.age, u.First)
}

// Moderator is a user who moderates a community
type Moderator struct {
	User
	Community string
}

// NewModerator returns a moderator for the community
func NewModerator(first, last string, age int, email, community string) (*Moderator, error) {
	user, err := NewUser(first, last, age, email)
	if err != nil {
		return nil, err
	}

	return &Moderator{
		User:      *user,
		Community: community,
	}, nil
}

// RemovePost returns a statement describing the moderation action
func (m *Moderator) RemovePost() string {
	return fmt.Sprintf("%s removed a post from the %s community", m.FullName(), m.Community)
}
