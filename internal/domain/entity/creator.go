package entity

import "strings"

// Creator is the public identity of a route owner, as reported by the
// external auth service.
type Creator struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Alias    string `json:"alias,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// CreatorSummary exposes only the public fields of a creator. The email is
// partially masked so it can be shown in listings.
type CreatorSummary struct {
	ID    string `json:"id"`
	Alias string `json:"alias"`
	Email string `json:"email,omitempty"`
}

// RouteWithCreator decorates a route with its creator's identity. Creator is
// nil when enrichment was skipped or degraded; the base route is never
// mutated.
type RouteWithCreator struct {
	Route
	Creator *Creator `json:"creator"`
}

// Summary builds a CreatorSummary from a full creator record.
func (c *Creator) Summary() CreatorSummary {
	alias := c.Alias
	if alias == "" {
		alias = "anonymous"
	}

	return CreatorSummary{
		ID:    c.ID,
		Alias: alias,
		Email: maskEmail(c.Email),
	}
}

// maskEmail hides the domain part of an email address ("user@example.com"
// becomes "user@***").
func maskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, _, found := strings.Cut(email, "@")
	if !found {
		return "***"
	}

	return local + "@***"
}
