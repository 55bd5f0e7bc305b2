package user

import (
	"fmt"
	"strconv"
	"time"

	domuser "github.com/kailas-cloud/fintrack/internal/domain/user"
)

// Hash field names shared with the Lua scripts.
const (
	fieldID        = "id"
	fieldEmail     = "email"
	fieldPremium   = "is_premium"
	fieldAIUsed    = "ai_used"
	fieldAIResetAt = "ai_reset_at"
	fieldCreatedAt = "created_at"
)

// userToHash converts a domain User to a map for HSET.
func userToHash(u domuser.User) map[string]string {
	return map[string]string{
		fieldID:        u.ID(),
		fieldEmail:     u.Email(),
		fieldPremium:   formatBool(u.IsPremium()),
		fieldAIUsed:    strconv.Itoa(u.AIUsed()),
		fieldAIResetAt: formatTime(u.AIResetAt()),
		fieldCreatedAt: formatTime(u.CreatedAt()),
	}
}

// userFromHash hydrates a domain User from an HGETALL result map.
func userFromHash(m map[string]string) (domuser.User, error) {
	used := 0
	if s := m[fieldAIUsed]; s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return domuser.User{}, fmt.Errorf("invalid %s: %w", fieldAIUsed, err)
		}
		used = v
	}

	resetAt, err := parseTime(m[fieldAIResetAt])
	if err != nil {
		return domuser.User{}, fmt.Errorf("invalid %s: %w", fieldAIResetAt, err)
	}
	createdAt, err := parseTime(m[fieldCreatedAt])
	if err != nil {
		return domuser.User{}, fmt.Errorf("invalid %s: %w", fieldCreatedAt, err)
	}

	return domuser.Reconstruct(
		m[fieldID], m[fieldEmail], m[fieldPremium] == "1", used, resetAt, createdAt,
	), nil
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// formatTime stores UTC RFC 3339 so the first seven bytes are always YYYY-MM.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
