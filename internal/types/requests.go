package types

import (
	"net/url"
	"strconv"
)

// ------------------------------
// Request Types
// ------------------------------

// Strategy selects the server-side ordering of content listings.
type Strategy string

const (
	StrategyNew      Strategy = "new"
	StrategyOld      Strategy = "old"
	StrategyRelevant Strategy = "relevant"
)

// ContentParams holds optional listing parameters. Zero values are not sent,
// so page=0 or per_page=0 can never be requested; the server default applies.
type ContentParams struct {
	Page     int
	PerPage  int
	Strategy Strategy
}

// Values encodes the non-zero fields as query parameters.
func (p *ContentParams) Values() url.Values {
	v := url.Values{}
	if p == nil {
		return v
	}
	if p.Page != 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage != 0 {
		v.Set("per_page", strconv.Itoa(p.PerPage))
	}
	if p.Strategy != "" {
		v.Set("strategy", string(p.Strategy))
	}
	return v
}

// CreateUserRequest holds parameters for a new account
type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds session credentials
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RecoveryRequest identifies the account to recover by exactly one of
// Username or Email.
type RecoveryRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}
