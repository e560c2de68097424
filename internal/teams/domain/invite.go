package domain

import (
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

// MaxInviteUses is the largest accepted usage cap. 0 means unlimited.
const MaxInviteUses = 10000

type Invite struct {
	ID              string
	Token           string
	TeamID          string
	MaxUses         int // 0 = unlimited
	UsedCount       int
	AllowedDomain   string // lowercase, empty = unrestricted
	CreatedByUserID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RemainingUses is nil for unlimited invites, otherwise max(MaxUses-UsedCount, 0).
func (i Invite) RemainingUses() *int {
	if i.MaxUses == 0 {
		return nil
	}
	n := max(i.MaxUses-i.UsedCount, 0)
	return &n
}

func (i Invite) Exhausted() bool {
	r := i.RemainingUses()
	return r != nil && *r <= 0
}

// Admits reports whether a user with the given email may redeem the invite.
func (i Invite) Admits(email string) bool {
	if i.AllowedDomain == "" {
		return true
	}
	return EmailDomain(email) == i.AllowedDomain
}

// InviteView is what lookup exposes about an invite and its team.
type InviteView struct {
	TeamID        string
	TeamName      string
	TeamSlug      string
	AllowedDomain string
	RemainingUses *int
}

// Acceptance is the outcome of redeeming an invite.
type Acceptance struct {
	TeamID        string
	Joined        bool
	AlreadyMember bool
	RemainingUses *int
}

// ClampMaxUses truncates n into [0, MaxInviteUses]. NaN, infinities and
// negatives mean unlimited.
func ClampMaxUses(n float64) int {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	if n > MaxInviteUses {
		return MaxInviteUses
	}
	return int(n)
}

var domainPattern = regexp.MustCompile(`^[a-z0-9-]+(\.[a-z0-9-]+)*\.[a-z]{2,}$`)

// ParseAllowedDomain lowercases and validates an email-domain restriction.
// A leading '@' is tolerated.
func ParseAllowedDomain(raw string) Field[string] {
	d := strings.ToLower(strings.TrimSpace(raw))
	d = strings.TrimPrefix(d, "@")
	if d == "" {
		return Unset[string]()
	}
	if len(d) > 253 || !domainPattern.MatchString(d) {
		return Invalid[string]("not a domain: " + raw)
	}
	return Valid(d)
}

// ExtractToken pulls an invite token out of a bare token or an invite link.
// Links carry it either as ?token= or as the final path segment. Input that
// does not parse as an absolute URL is taken as the token itself.
func ExtractToken(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" {
		return raw
	}

	if tok := strings.TrimSpace(u.Query().Get("token")); tok != "" {
		return tok
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if s := strings.TrimSpace(segments[i]); s != "" {
			return s
		}
	}
	return ""
}
