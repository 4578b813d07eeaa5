package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stellar/go-stellar-sdk/support/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewClient(t *testing.T) {
	t.Run("defaults the timeout", func(t *testing.T) {
		client := NewClient(Options{VerifyTLS: true})
		assert.Equal(t, TimeoutClientInSeconds*time.Second, client.Timeout)

		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		if transport.TLSClientConfig != nil {
			assert.False(t, transport.TLSClientConfig.InsecureSkipVerify)
		}
	})

	t.Run("disabling TLS verification is logged", func(t *testing.T) {
		getEntries := log.DefaultLogger.StartTest(log.WarnLevel)

		client := NewClient(Options{Timeout: 5 * time.Second})
		assert.Equal(t, 5*time.Second, client.Timeout)

		transport, ok := client.Transport.(*http.Transport)
		require.True(t, ok)
		require.NotNil(t, transport.TLSClientConfig)
		assert.True(t, transport.TLSClientConfig.InsecureSkipVerify)

		entries := getEntries()
		require.Len(t, entries, 1)
		assert.Contains(t, entries[0].Message, "TLS certificate verification is DISABLED")
	})

	t.Run("accepts self-signed certificates when verification is disabled", func(t *testing.T) {
		server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		resp, err := NewClient(Options{}).Get(server.URL)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		_, err = NewClient(Options{VerifyTLS: true}).Get(server.URL)
		require.Error(t, err)
	})
}
