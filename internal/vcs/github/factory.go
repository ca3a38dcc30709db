package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/thomas-vilte/mateforge/internal/vcs"
	"golang.org/x/oauth2"
)

var _ vcs.ClientFactory = (*Factory)(nil)

// Factory builds API clients bound to per-request tokens. The base URL and
// timeout come from configuration once; the token changes on every call.
type Factory struct {
	baseURL *url.URL
	timeout time.Duration
}

func NewFactory(baseURL string, timeout time.Duration) (*Factory, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github base URL %q: %w", baseURL, err)
	}

	return &Factory{
		baseURL: parsed,
		timeout: timeout,
	}, nil
}

// NewClient returns a client whose transport injects token into every
// request. The token lives only in that transport. An empty token yields an
// unauthenticated client, enough for reads on public repositories.
func (f *Factory) NewClient(token string) vcs.Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	} else {
		httpClient = &http.Client{}
	}

	// Bounds every remote call individually; there is no retry layer on top.
	httpClient.Timeout = f.timeout

	return NewClient(httpClient, f.baseURL)
}
