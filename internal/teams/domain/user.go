package domain

import (
	"strings"
	"time"
)

type User struct {
	ID               string
	Email            string // stored lowercase, may be empty
	Name             string
	LastActiveTeamID string // weak reference, may be empty
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EmailDomain returns the lowercase part after the last '@', or "".
func EmailDomain(email string) string {
	i := strings.LastIndexByte(email, '@')
	if i < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[i+1:]))
}

// EmailLocalPart returns the part before the last '@', or "".
func EmailLocalPart(email string) string {
	i := strings.LastIndexByte(email, '@')
	if i < 0 {
		return ""
	}
	return strings.TrimSpace(email[:i])
}

// ParseEmail lowercases and minimally checks an email address.
func ParseEmail(raw string) Field[string] {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return Unset[string]()
	}
	if len(email) > 254 || strings.ContainsAny(email, " \t\r\n") {
		return Invalid[string]("malformed email")
	}
	local, dom := EmailLocalPart(email), EmailDomain(email)
	if local == "" || dom == "" || strings.Count(email, "@") != 1 {
		return Invalid[string]("malformed email")
	}
	return Valid(email)
}

// ParseDisplayName trims a display name. Empty is Unset.
func ParseDisplayName(raw string) Field[string] {
	name := strings.TrimSpace(raw)
	if name == "" {
		return Unset[string]()
	}
	if len([]rune(name)) > MaxNameLength {
		return Invalid[string]("name too long")
	}
	return Valid(name)
}
