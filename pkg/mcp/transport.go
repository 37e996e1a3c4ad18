package mcp

import (
	"crypto/tls"
	"fmt"
	"net/http"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/cucinellclark/bvbrc-copilot/pkg/config"
)

// createTransport creates a streamable HTTP transport for one MCP server.
// authToken is the per-job bearer token; it is sent only when the server
// has send_auth enabled. Servers with a static service token use that
// instead, regardless of the job.
func createTransport(serverCfg *config.MCPServerConfig, authToken string) (mcpsdk.Transport, error) {
	if serverCfg.Transport.URL == "" {
		return nil, fmt.Errorf("transport requires url")
	}

	token := ""
	switch {
	case serverCfg.StaticAuth != "":
		token = serverCfg.StaticAuth
	case serverCfg.SendAuth:
		token = authToken
	}

	transport := &mcpsdk.StreamableClientTransport{
		Endpoint: serverCfg.Transport.URL,
	}
	if token != "" || serverCfg.Transport.VerifySSL != nil {
		transport.HTTPClient = buildHTTPClient(serverCfg.Transport, token)
	}
	return transport, nil
}

// buildHTTPClient creates an http.Client with auth and TLS settings.
// No client-level timeout is set: the streamable transport holds a
// long-lived SSE connection, so deadlines come from per-call contexts.
func buildHTTPClient(cfg config.TransportConfig, token string) *http.Client {
	httpTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.VerifySSL != nil && !*cfg.VerifySSL {
		httpTransport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,             //nolint:gosec // user-configured
			MinVersion:         tls.VersionTLS12, // prevent protocol downgrade even in relaxed mode
		}
	}

	client := &http.Client{
		Transport: httpTransport,
	}

	if token != "" {
		client.Transport = &bearerTokenTransport{
			base:  client.Transport,
			token: token,
		}
	}

	return client
}

// bearerTokenTransport wraps an http.RoundTripper to add Authorization headers.
type bearerTokenTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}
