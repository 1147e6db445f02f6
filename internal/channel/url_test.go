package channel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name                            string
		scheme, host, port, path, token string
		want                            string
	}{
		{"defaults to wss", "", "push.example.com", "", "", "abc", "wss://push.example.com?token=abc"},
		{"all parts", "ws", "localhost", "8080", "/ws", "t0k", "ws://localhost:8080/ws?token=t0k"},
		{"escapes token", "wss", "h", "", "/p", "a b&c", "wss://h/p?token=a+b%26c"},
		{"blank scheme", "  ", "h", "", "", "", "wss://h?token="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildURL(tt.scheme, tt.host, tt.port, tt.path, tt.token))
		})
	}
}
