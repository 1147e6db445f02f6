package channel

import (
	"net/url"
	"strings"
)

// DefaultScheme is used when no websocket scheme is configured.
const DefaultScheme = "wss"

// BuildURL composes `scheme://host[:port][path]?token=<token>`.
func BuildURL(scheme, host, port, path, token string) string {
	if strings.TrimSpace(scheme) == "" {
		scheme = DefaultScheme
	}
	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(host)
	if port != "" {
		b.WriteString(":")
		b.WriteString(port)
	}
	b.WriteString(path)
	b.WriteString("?token=")
	b.WriteString(url.QueryEscape(token))
	return b.String()
}
