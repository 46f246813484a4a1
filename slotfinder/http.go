package slotfinder

import (
	"net"
	"net/http"
	"time"

	"github.com/klauspost/compress/gzhttp"
)

var (
	defaultMaxIdleConnsPerHost = 20
	defaultKeepAlive           = 60 * time.Second
)

func newHTTPTransport(connectTimeout time.Duration) *http.Transport {
	return &http.Transport{
		IdleConnTimeout:     30 * time.Second,
		MaxConnsPerHost:     defaultMaxIdleConnsPerHost,
		MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
		Proxy:               http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: defaultKeepAlive,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		TLSHandshakeTimeout: 10 * time.Second,
	}
}

// newHTTPClient returns a pooled HTTP client with the given connect
// and total-call timeouts. The client is safe for concurrent use; the
// connection pool is the only resource shared across resolutions.
func newHTTPClient(connectTimeout, totalTimeout time.Duration) *http.Client {
	tr := newHTTPTransport(connectTimeout)

	return &http.Client{
		Timeout:   totalTimeout,
		Transport: gzhttp.Transport(tr),
	}
}
