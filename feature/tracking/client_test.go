package tracking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"order-manager/feature/tracking"

	"github.com/stretchr/testify/assert"
)

func TestClient_Track(t *testing.T) {
	t.Run("Passes Payload Through With Referer", func(t *testing.T) {
		var gotReferer string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotReferer = r.Header.Get("Referer")
			assert.Equal(t, "/api/tracking/AWB123", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"in_transit"}`))
		}))
		defer srv.Close()

		client := tracking.NewClient(tracking.Config{BaseURL: srv.URL, TimeoutSeconds: 2})
		payload, err := client.Track(context.Background(), "AWB123")
		assert.NoError(t, err)
		assert.JSONEq(t, `{"status":"in_transit"}`, string(payload))
		assert.Contains(t, gotReferer, "awbNo=AWB123")
	})

	t.Run("Upstream Error Status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client := tracking.NewClient(tracking.Config{BaseURL: srv.URL, TimeoutSeconds: 2})
		_, err := client.Track(context.Background(), "AWB123")
		assert.Error(t, err)
	})

	t.Run("Non-JSON Payload", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>blocked</html>"))
		}))
		defer srv.Close()

		client := tracking.NewClient(tracking.Config{BaseURL: srv.URL, TimeoutSeconds: 2})
		_, err := client.Track(context.Background(), "AWB123")
		assert.Error(t, err)
	})
}
