// Package fetch downloads puzzle inputs into a fixture directory.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adventkit/adventkit/advent"
	"github.com/adventkit/adventkit/config"
	"github.com/adventkit/adventkit/fixture"
	"github.com/adventkit/adventkit/framework"
)

const defaultTimeout = 30 * time.Second

var (
	// ErrNoSession is returned when no session cookie is configured; inputs are per user.
	ErrNoSession = errors.New("no session configured")

	// ErrNotAvailable is returned when the server has no input for a day, usually because the
	// puzzle is not unlocked yet.
	ErrNotAvailable = errors.New("puzzle input not available")

	// ErrExists is returned by Download when the input file exists and overwriting was not
	// requested.
	ErrExists = errors.New("input already downloaded")
)

// Client downloads puzzle inputs for the user identified by a session cookie.
type Client struct {
	baseURL    string
	session    string
	userAgent  string
	httpClient *http.Client
	logger     framework.Logger
}

func NewClient(settings config.Fetch, logger framework.Logger) *Client {
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(settings.BaseURL, "/"),
		session:    settings.Session,
		userAgent:  settings.UserAgent,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     logger,
	}
}

// InputURL is where the input of a day is published.
func (c *Client) InputURL(id advent.ProblemID) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, id.Year, id.Day)
}

// Input downloads the input of a day.
func (c *Client) Input(ctx context.Context, id advent.ProblemID) (string, error) {
	if c.session == "" {
		return "", ErrNoSession
	}
	url := c.InputURL(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	c.logger.Printf("Downloading input of %s from %s", id, url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("%w for %s", ErrNotAvailable, id)
	case resp.StatusCode != http.StatusOK:
		message := strings.TrimSpace(string(data))
		if message != "" {
			message = ": " + message
		}
		return "", fmt.Errorf("server returned HTTP status %d%s", resp.StatusCode, message)
	}
	c.logger.Printf("Downloaded %d bytes", len(data))
	return string(data), nil
}

// Download stores the input of a day in the fixture directory resourceDir and returns the path
// of the file. An existing file is only replaced if force is set.
func (c *Client) Download(ctx context.Context, id advent.ProblemID, resourceDir string, force bool) (string, error) {
	path := filepath.Join(resourceDir, filepath.FromSlash(fixture.Path(id, fixture.InputFile)))
	if !force {
		if _, err := os.Stat(path); err == nil {
			return path, fmt.Errorf("%w: %s", ErrExists, path)
		}
	}

	input, err := c.Input(ctx, id)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(input), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
