// Package github fetches user profiles from the GitHub REST API.
package github

import "strconv"

const (
	// DefaultBaseURL is the public GitHub REST API host.
	DefaultBaseURL = "https://api.github.com"
	// DefaultUser is the profile loaded on startup.
	DefaultUser = "pjr94"
)

// UserProfile is the subset of the /users/<login> payload shown in the card.
// Fields absent from the response decode to their zero values; the counts
// are pointers so an absent count is distinguishable from zero.
type UserProfile struct {
	Login       string `json:"login"`
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	AvatarURL   string `json:"avatar_url"`
	HTMLURL     string `json:"html_url"`
	ReposURL    string `json:"repos_url"`
	PublicRepos int    `json:"public_repos"`
	Followers   *int   `json:"followers"`
	Following   *int   `json:"following"`
}

// IDString returns the numeric id as text, or "" when the payload had none.
func (p *UserProfile) IDString() string {
	if p == nil || p.ID == 0 {
		return ""
	}
	return strconv.FormatInt(p.ID, 10)
}

// FollowersString returns the follower count as text, or "" when absent.
func (p *UserProfile) FollowersString() string {
	return countString(p, func(p *UserProfile) *int { return p.Followers })
}

// FollowingString returns the following count as text, or "" when absent.
func (p *UserProfile) FollowingString() string {
	return countString(p, func(p *UserProfile) *int { return p.Following })
}

func countString(p *UserProfile, field func(*UserProfile) *int) string {
	if p == nil {
		return ""
	}
	n := field(p)
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// UserURL builds the profile locator for query. The query is appended
// verbatim; no escaping is applied.
func UserURL(base, query string) string {
	return base + "/users/" + query
}
