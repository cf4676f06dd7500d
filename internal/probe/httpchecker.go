package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/hamed0406/endpointprobe/internal/domain"
)

// maxBodyBytes caps how much of a response body is read for inspection.
const maxBodyBytes = 4 << 20

// Request is a single GET to perform.
type Request struct {
	URL       string
	Timeout   time.Duration
	VerifyTLS bool
}

// Fetcher performs exactly one network call and classifies the result.
type Fetcher interface {
	Fetch(ctx context.Context, r Request) domain.Outcome
}

// HTTPFetcher keeps one client per verification mode; both are safe for
// concurrent use.
type HTTPFetcher struct {
	Verified *http.Client
	Insecure *http.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Verified: &http.Client{Transport: newTransport(false)},
		Insecure: &http.Client{Transport: newTransport(true)},
	}
}

func newTransport(skipVerify bool) *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.TLSClientConfig = &tls.Config{InsecureSkipVerify: skipVerify} //nolint:gosec // opt-in via tls_verify
	return t
}

// Fetch bounds the whole exchange, body included, by r.Timeout.
func (h *HTTPFetcher) Fetch(ctx context.Context, r Request) domain.Outcome {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.URL, nil)
	if err != nil {
		return domain.Outcome{Kind: domain.OutcomeTransportError, Elapsed: time.Since(start), Err: err}
	}

	client := h.Insecure
	if r.VerifyTLS {
		client = h.Verified
	}
	resp, err := client.Do(req)
	if err != nil {
		return failed(ctx, err, time.Since(start))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	elapsed := time.Since(start)
	if err != nil {
		return failed(ctx, err, elapsed)
	}

	kind := domain.OutcomeSuccess
	if resp.StatusCode >= 400 {
		kind = domain.OutcomeHTTPError
	}
	return domain.Outcome{Kind: kind, StatusCode: resp.StatusCode, Elapsed: elapsed, Body: body}
}

func failed(ctx context.Context, err error, elapsed time.Duration) domain.Outcome {
	if isTimeout(ctx, err) {
		return domain.Outcome{Kind: domain.OutcomeTimeout, Elapsed: elapsed, Err: err}
	}
	return domain.Outcome{Kind: domain.OutcomeTransportError, Elapsed: elapsed, Err: err}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// describe drops the url.Error wrapper so the raw URL does not leak into
// messages.
func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		return ue.Err.Error()
	}
	return err.Error()
}
