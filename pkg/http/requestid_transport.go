package http

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type requestIDTransport struct {
	transport http.RoundTripper
}

func (t *requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	reqCopy := req.Clone(req.Context())

	if reqCopy.Header.Get(requestIDHeader) == "" {
		reqCopy.Header.Set(requestIDHeader, uuid.NewString())
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithRequestID stamps every outbound request with an X-Request-ID header so
// upstream logs can be correlated with ours.
func WithRequestID() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &requestIDTransport{
			transport: rt,
		}
	})
}
