package pve

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func probeClient(rt http.RoundTripper) *http.Client {
	return &http.Client{Transport: rt, Timeout: time.Second}
}

func TestProbePort(t *testing.T) {
	t.Run("reachable means standard port", func(t *testing.T) {
		client := probeClient(&mockRoundTripper{response: &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("")),
		}})
		assert.Equal(t, StandardPort, ProbePort(client, "pve.example.com"))
	})

	t.Run("HTTP errors still mean standard port", func(t *testing.T) {
		client := probeClient(&mockRoundTripper{response: &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("")),
		}})
		assert.Equal(t, StandardPort, ProbePort(client, "pve.example.com"))
	})

	t.Run("connection failure falls back", func(t *testing.T) {
		client := probeClient(&mockRoundTripper{err: assert.AnError})
		assert.Equal(t, FallbackPort, ProbePort(client, "pve.example.com"))
	})
}
