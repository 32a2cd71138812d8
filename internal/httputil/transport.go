package httputil

import (
	"crypto/tls"
	"net/http"
	"time"
)

type transportOptions struct {
	insecure bool
}

// TransportOption customizes the transport returned by GetHTTPTransport.
type TransportOption func(*transportOptions)

// WithInsecure skips TLS certificate verification.
func WithInsecure(insecure bool) TransportOption {
	return func(o *transportOptions) {
		o.insecure = insecure
	}
}

// GetHTTPTransport returns an http.Transport with sane keep-alive and
// handshake timeouts for registry traffic.
func GetHTTPTransport(opts ...TransportOption) *http.Transport {
	options := &transportOptions{}
	for _, opt := range opts {
		opt(options)
	}

	transport := &http.Transport{
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}
	if options.insecure {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}
	return transport
}
