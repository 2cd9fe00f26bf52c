// Package network builds the outbound HTTP clients used to reach AI providers.
package network

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

var ErrUnsupportedProxy = errors.New("unsupported proxy scheme")

// NewHTTPClient returns a client with the given timeout. A non-empty proxyURL
// routes every request through an HTTP, HTTPS or SOCKS5 proxy.
func NewHTTPClient(proxyURL string, timeout time.Duration) (*http.Client, error) {
	client := &http.Client{Timeout: timeout}
	if strings.TrimSpace(proxyURL) == "" {
		return client, nil
	}

	transport, err := newTransportWithProxy(proxyURL)
	if err != nil {
		return nil, err
	}
	client.Transport = transport
	return client, nil
}

// newTransportWithProxy creates an http.Transport with proper proxy support.
// SOCKS proxies dial through golang.org/x/net/proxy; HTTP and HTTPS proxies
// use http.ProxyURL.
func newTransportWithProxy(proxyURL string) (*http.Transport, error) {
	parsed, err := url.Parse(strings.TrimSpace(proxyURL))
	if err != nil {
		return nil, fmt.Errorf("parse proxy url: %w", err)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("parse proxy url: missing host in %q", proxyURL)
	}

	switch parsed.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsed.User != nil {
			auth = &proxy.Auth{User: parsed.User.Username()}
			if password, ok := parsed.User.Password(); ok {
				auth.Password = password
			}
		}

		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("create socks5 dialer: %w", err)
		}

		transport := &http.Transport{}
		if cd, ok := dialer.(proxy.ContextDialer); ok {
			transport.DialContext = cd.DialContext
		} else {
			transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
				return dialer.Dial(network, addr)
			}
		}
		return transport, nil
	case "http", "https":
		return &http.Transport{Proxy: http.ProxyURL(parsed)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProxy, parsed.Scheme)
	}
}
