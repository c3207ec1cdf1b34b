package clients

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// defaultTimeout bounds every outbound provider call.
const defaultTimeout = 30 * time.Second

// throttledTransport spaces outbound requests with a token bucket so bursts
// of account processing stay inside provider rate limits.
type throttledTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func (t *throttledTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return t.base.RoundTrip(req)
}

// newThrottledClient builds an HTTP client limited to rps requests per
// second with the given burst.
func newThrottledClient(rps float64, burst int) *http.Client {
	return &http.Client{
		Timeout: defaultTimeout,
		Transport: &throttledTransport{
			base:    http.DefaultTransport,
			limiter: rate.NewLimiter(rate.Limit(rps), burst),
		},
	}
}

// drainBody reads and closes a response body so the connection can be
// reused.
func drainBody(body io.ReadCloser) []byte {
	defer body.Close()
	b, err := io.ReadAll(io.LimitReader(body, 1<<20))
	if err != nil {
		return nil
	}
	return b
}

// statusError normalizes non-2xx provider responses.
func statusError(provider string, resp *http.Response, body []byte) error {
	return fmt.Errorf("%s: unexpected status %d: %s", provider, resp.StatusCode, string(body))
}
