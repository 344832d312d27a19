package fouryousee

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	requestDelay time.Duration
	limiter      *rate.Limiter
	account      Account
}

func defaultOptions() clientOptions {
	return clientOptions{
		baseURL:      DefaultBaseURL,
		timeout:      30 * time.Second,
		requestDelay: DefaultRequestDelay,
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		if baseURL != "" {
			o.baseURL = baseURL
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The timeout option is
// ignored when a custom client is given.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithRequestDelay sets the pause taken before every request.
// Zero disables it.
func WithRequestDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay >= 0 {
			o.requestDelay = delay
		}
	}
}

// WithRateLimit adds a token bucket limiter on top of the fixed delay.
// Share one limiter between clients that use the same account.
func WithRateLimit(limiter *rate.Limiter) Option {
	return func(o *clientOptions) {
		o.limiter = limiter
	}
}

// WithAccount records the account metadata the token belongs to.
func WithAccount(account Account) Option {
	return func(o *clientOptions) {
		o.account = account
	}
}
