package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// ContentStatus is the publication state of a Content.
type ContentStatus string

const (
	StatusPublished ContentStatus = "published"
	StatusDraft     ContentStatus = "draft"
)

// ContentWithoutBody is the projection returned by list endpoints.
type ContentWithoutBody struct {
	ID                string        `json:"id"`
	ParentID          *string       `json:"parent_id"`
	OwnerID           string        `json:"owner_id"`
	Slug              string        `json:"slug"`
	Title             *string       `json:"title"`
	Status            ContentStatus `json:"status"`
	SourceURL         *string       `json:"source_url"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	PublishedAt       time.Time     `json:"published_at"`
	DeletedAt         *time.Time    `json:"deleted_at"`
	Tabcoins          int           `json:"tabcoins"`
	OwnerUsername     string        `json:"owner_username"`
	ChildrenDeepCount int           `json:"children_deep_count"`
}

// IsRoot reports whether the content is a top-level post rather than a reply.
func (c ContentWithoutBody) IsRoot() bool { return c.ParentID == nil }

// Content is a post or comment including its markdown body.
type Content struct {
	ContentWithoutBody
	Body string `json:"body,omitempty"`
}

// StatusPoint is one day of an analytics series.
type StatusPoint struct {
	// Date is formatted dd/mm.
	Date   string `json:"date"`
	Value  int64  `json:"value"`
	Metric string `json:"metric"`
}

// Wire names of the analytics counters.
const (
	MetricUsersCreated          = "cadastrados"
	MetricRootContentPublished  = "conteudos"
	MetricChildContentPublished = "respostas"

	// metricUsersCreatedAlt is what the live service currently emits for
	// registrations.
	metricUsersCreatedAlt = "cadastros"
)

// MetricAliases lists alternative wire names accepted for a metric.
func MetricAliases(metric string) []string {
	if metric == MetricUsersCreated {
		return []string{metricUsersCreatedAlt}
	}
	return nil
}

// UserToken is the session credential returned by login.
type UserToken struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User represents a TabNews account.
type User struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Features []string `json:"features"`
}

// HasFeature reports whether the account carries the named feature flag.
func (u User) HasFeature(name string) bool {
	for _, f := range u.Features {
		if f == name {
			return true
		}
	}
	return false
}
