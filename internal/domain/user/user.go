package user

import (
	"fmt"
	"strings"
	"time"
)

// User is the account aggregate as seen by the usage ledger (immutable value object).
type User struct {
	id        string
	email     string
	premium   bool
	aiUsed    int
	aiResetAt time.Time
	createdAt time.Time
}

// New validates and creates a User with a fresh usage window starting at now.
func New(id, email string, premium bool, now time.Time) (User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return User{}, fmt.Errorf("user id is required")
	}
	if len(id) > 128 {
		return User{}, fmt.Errorf("user id too long (max 128)")
	}
	if strings.ContainsAny(id, ":*?[] ") {
		return User{}, fmt.Errorf("user id contains reserved characters")
	}
	now = now.UTC()
	return User{
		id:        id,
		email:     strings.TrimSpace(email),
		premium:   premium,
		aiResetAt: now,
		createdAt: now,
	}, nil
}

// Reconstruct hydrates a User from storage without validation.
func Reconstruct(id, email string, premium bool, aiUsed int, aiResetAt, createdAt time.Time) User {
	return User{
		id:        id,
		email:     email,
		premium:   premium,
		aiUsed:    aiUsed,
		aiResetAt: aiResetAt,
		createdAt: createdAt,
	}
}

// ID returns the opaque user identifier.
func (u User) ID() string { return u.id }

// Email returns the contact email, possibly empty.
func (u User) Email() string { return u.email }

// IsPremium reports whether the user is exempt from the AI quota.
func (u User) IsPremium() bool { return u.premium }

// AIUsed returns the AI units consumed since AIResetAt.
func (u User) AIUsed() int { return u.aiUsed }

// AIResetAt returns the reset anchor of the current counting period.
func (u User) AIResetAt() time.Time { return u.aiResetAt }

// CreatedAt returns the signup time.
func (u User) CreatedAt() time.Time { return u.createdAt }
