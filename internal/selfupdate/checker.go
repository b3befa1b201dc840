package selfupdate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultOwner           = "abenov"
	defaultRepo            = "mathai"
	defaultAPIBaseURL      = "https://api.github.com"
	defaultDownloadBaseURL = "https://github.com"
)

// Checker checks GitHub releases for newer versions and applies updates.
type Checker struct {
	owner           string
	repo            string
	apiBaseURL      string
	downloadBaseURL string
	client          *http.Client
	execPath        func() (string, error)
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL overrides the GitHub API base URL.
func WithBaseURL(url string) Option {
	return func(c *Checker) { c.apiBaseURL = url }
}

// WithDownloadBaseURL overrides the release download base URL.
func WithDownloadBaseURL(url string) Option {
	return func(c *Checker) { c.downloadBaseURL = url }
}

// WithTimeout overrides the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// withExecPath overrides executable path resolution, for tests.
func withExecPath(fn func() (string, error)) Option {
	return func(c *Checker) { c.execPath = fn }
}

// NewChecker creates a Checker for the project's GitHub releases.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		owner:           defaultOwner,
		repo:            defaultRepo,
		apiBaseURL:      defaultAPIBaseURL,
		downloadBaseURL: defaultDownloadBaseURL,
		client:          &http.Client{Timeout: 30 * time.Second},
		execPath:        os.Executable,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckInput holds the current version for an update check.
type CheckInput struct {
	Version string
}

// CheckResult describes the outcome of an update check.
type CheckResult struct {
	UpdateAvailable bool
	LatestVersion   string
	ReleaseURL      string
}

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check queries the latest release and compares it against input.Version.
// A development build never has an update available.
func (c *Checker) Check(ctx context.Context, input *CheckInput) (*CheckResult, error) {
	if input.Version == "(devel)" {
		return &CheckResult{}, nil
	}

	url := fmt.Sprintf("%s/repos/%s/%s/releases/latest",
		strings.TrimRight(c.apiBaseURL, "/"), c.owner, c.repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d from release API", resp.StatusCode)
	}

	var release releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	latest := release.TagName
	current := canonicalVersion(input.Version)

	if !semver.IsValid(latest) || !semver.IsValid(current) {
		// Fall back to plain inequality when tags aren't semver.
		return &CheckResult{
			UpdateAvailable: latest != "" && latest != input.Version,
			LatestVersion:   latest,
			ReleaseURL:      release.HTMLURL,
		}, nil
	}

	return &CheckResult{
		UpdateAvailable: semver.Compare(latest, current) > 0,
		LatestVersion:   latest,
		ReleaseURL:      release.HTMLURL,
	}, nil
}

func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
