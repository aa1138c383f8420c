package model

import (
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

// Repository is a connected source repository. The access token used to
// onboard it is write-only and never appears here; only the onboarding status
// and derived metadata are tracked.
type Repository struct {
	ID        types.RepoID     `json:"id"`
	URL       string           `json:"url"`
	Status    types.RepoStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

var ptnRepoURL = regexp.MustCompile(`^https://[^/\s]+/[^/\s]+/[^/\s]+$`)

// ValidateRepoURL checks the `https://<host>/<owner>/<repo>` shape.
func ValidateRepoURL(url string) error {
	if url == "" {
		return goerr.Wrap(types.ErrValidationFailed, "repository URL is empty")
	}
	if !ptnRepoURL.MatchString(url) {
		return goerr.Wrap(types.ErrValidationFailed, "repository URL must be https://<host>/<owner>/<repo>",
			goerr.V("url", url),
		)
	}
	return nil
}

// ValidateAccessToken checks the two recognized token formats:
// fine-grained (github_pat_, >=70 chars) and classic (ghp_, >=36 chars).
func ValidateAccessToken(token types.AccessToken) error {
	switch {
	case strings.HasPrefix(string(token), "github_pat_") && len(token) >= 70:
		return nil
	case strings.HasPrefix(string(token), "ghp_") && len(token) >= 36:
		return nil
	}
	return goerr.Wrap(types.ErrValidationFailed, "access token does not match a recognized format")
}

type CreateRepositoryInput struct {
	URL   string            `json:"url"`
	Token types.AccessToken `json:"token" masq:"secret"`
}

func (x *CreateRepositoryInput) Validate() error {
	if err := ValidateRepoURL(x.URL); err != nil {
		return err
	}
	return ValidateAccessToken(x.Token)
}

// UpdateRepositoryInput replaces the remote URL and/or the stored credential.
// An empty token keeps the server-side credential as is.
type UpdateRepositoryInput struct {
	URL   string            `json:"url"`
	Token types.AccessToken `json:"token,omitempty" masq:"secret"`
}

func (x *UpdateRepositoryInput) Validate() error {
	if err := ValidateRepoURL(x.URL); err != nil {
		return err
	}
	if x.Token == "" {
		return nil
	}
	return ValidateAccessToken(x.Token)
}

// RepoSort is a stable sort key for repository listings.
type RepoSort string

const (
	RepoSortByName      RepoSort = "name"
	RepoSortByUpdatedAt RepoSort = "updated_at"
)

// RepoFilter narrows and orders a repository listing without mutating the
// stored order.
type RepoFilter struct {
	Query  string
	Status types.RepoStatus
	SortBy RepoSort
}

// Match reports whether the repository passes the free-text and status
// predicates.
func (x *RepoFilter) Match(repo *Repository) bool {
	if x == nil {
		return true
	}
	if x.Status != "" && repo.Status != x.Status {
		return false
	}
	if x.Query != "" && !strings.Contains(strings.ToLower(repo.URL), strings.ToLower(x.Query)) {
		return false
	}
	return true
}
