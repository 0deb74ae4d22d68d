// Package network provides pre-configured HTTP clients for concurrent provider communication.
//
// The fingerprint client leverages refraction-networking/utls to emulate
// Chrome's TLS Client Hello signature. Some provider hosts sit behind
// anti-bot challenges (Cloudflare, DDoS-Guard) that reject the standard Go
// TLS fingerprint; mimicking prevalent browser traffic is required to reach
// them at all.
//
// Protocol negotiation: an HTTP/2 connection is attempted first (preferred by
// modern CDNs). If the handshake fails or the server only speaks HTTP/1.1,
// the request transparently falls back to an H1 transport with forced
// protocol advertisement.
package network

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

const fingerprintTimeout = 30 * time.Second

// FingerprintOptions controls TLS behavior of the fingerprint client.
type FingerprintOptions struct {
	// InsecureSkipVerify disables certificate verification on outbound
	// connections. Operator opt-in only; verification stays on by default.
	InsecureSkipVerify bool
}

// FingerprintClient returns an HTTP client whose TLS handshakes mimic Chrome 120.
func FingerprintClient(opts FingerprintOptions) *http.Client {
	return &http.Client{
		Timeout: fingerprintTimeout,
		Transport: &fingerprintTransport{
			h2: &http2.Transport{
				DialTLSContext: func(ctx context.Context, netw, addr string, _ *tls.Config) (net.Conn, error) {
					return dialTLS(ctx, netw, addr, opts, nil)
				},
			},
			h1: &http.Transport{
				DialTLSContext: func(ctx context.Context, netw, addr string) (net.Conn, error) {
					return dialTLS(ctx, netw, addr, opts, []string{"http/1.1"})
				},
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// fingerprintTransport routes requests through the H2 transport and falls
// back to HTTP/1.1 when the server refuses the h2 connection.
type fingerprintTransport struct {
	h2 *http2.Transport
	h1 *http.Transport
}

func (t *fingerprintTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, bodyErr := req.GetBody()
		if bodyErr != nil {
			return nil, fmt.Errorf("h2 round trip: %w", err)
		}
		retry.Body = body
	}

	resp, h1Err := t.h1.RoundTrip(retry)
	if h1Err != nil {
		return nil, fmt.Errorf("h2 round trip: %v, h1 fallback: %w", err, h1Err)
	}
	return resp, nil
}

// dialTLS creates a TLS connection mimicking Chrome 120's fingerprint.
// With nil nextProtos both h2 and http/1.1 are advertised (natural Chrome behavior).
func dialTLS(ctx context.Context, netw, addr string, opts FingerprintOptions, nextProtos []string) (net.Conn, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	dialer := &net.Dialer{Timeout: fingerprintTimeout}
	conn, err := dialer.DialContext(ctx, netw, addr)
	if err != nil {
		return nil, err
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName:         host,
		InsecureSkipVerify: opts.InsecureSkipVerify,
		MinVersion:         tls.VersionTLS12,
		NextProtos:         nextProtos,
	}, utls.HelloChrome_120)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
