package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	pathpkg "path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
	"github.com/pipewatch/pipewatch/pkg/utils/safe"
)

// Client talks to the prediction platform's REST API. Every request carries
// the session's bearer token; the session is injected at construction and is
// the only credential source.
type Client struct {
	baseURL    *url.URL
	session    *model.Session
	httpClient HTTPClient
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var _ interfaces.Backend = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func New(baseURL string, session *model.Session, options ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "backend URL is empty")
	}
	if session == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "session is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid backend URL", goerr.V("url", baseURL))
	}

	client := &Client{
		baseURL:    parsed,
		session:    session,
		httpClient: http.DefaultClient,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// apiError is the backend's error body. Either field may be absent; the
// human-readable reason prefers `error` over `details`.
type apiError struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func (x *apiError) message() string {
	if x.Error != "" {
		return x.Error
	}
	if x.Details != "" {
		return x.Details
	}
	return "backend returned an error"
}

func (x *Client) userID() string {
	return string(x.session.UserID)
}

func (x *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := *x.baseURL
	endpoint.Path = pathpkg.Join(endpoint.Path, path)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body")
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return goerr.Wrap(err, "failed to build request")
	}
	req.Header.Set("Authorization", "Bearer "+string(x.session.Token))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(types.ErrNetwork, "request failed",
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("cause", err.Error()),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var apiErr apiError
		raw, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(raw, &apiErr)

		base := types.ErrNetwork
		if resp.StatusCode == http.StatusNotFound {
			base = types.ErrNotFound
		}
		return goerr.Wrap(base, apiErr.message(),
			goerr.V("method", method),
			goerr.V("path", path),
			goerr.V("status", resp.StatusCode),
		)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return goerr.Wrap(types.ErrNetwork, "failed to decode response",
				goerr.V("method", method),
				goerr.V("path", path),
			)
		}
	}

	return nil
}
