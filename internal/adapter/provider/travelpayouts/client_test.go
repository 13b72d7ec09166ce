package travelpayouts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelix/travel-search-proxy/internal/domain"
)

func cheapParams() *domain.FlightSearchParams {
	p := &domain.FlightSearchParams{Origin: "LED", Destination: "HKT"}
	p.Normalize()
	return p
}

func TestClient_Fetch_PassesBodyThroughUntouched(t *testing.T) {
	// Key order and formatting of the upstream body must survive verbatim.
	const upstream = `{"success":true,"data":{"HKT":{"0":{"price":1234}}},"currency":"USD"}`

	var gotPath, gotToken, gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotToken = r.URL.Query().Get("token")
		gotHeader = r.Header.Get("X-Access-Token")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstream))
	}))
	defer server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	data, err := client.Fetch(context.Background(), domain.KindCheap, cheapParams())

	require.NoError(t, err)
	assert.Equal(t, upstream, string(data))
	assert.Equal(t, "/v1/prices/cheap", gotPath)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "tok", gotHeader)
}

func TestClient_Fetch_ErrorTaxonomy(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantErr     error
		wantMessage string
	}{
		{
			name:        "401 invalid token",
			status:      http.StatusUnauthorized,
			wantErr:     domain.ErrUpstreamAuth,
			wantMessage: "Invalid API token. Please check your TRAVELPAYOUTS_API_TOKEN.",
		},
		{
			name:        "429 rate limited",
			status:      http.StatusTooManyRequests,
			wantErr:     domain.ErrUpstreamRateLimited,
			wantMessage: "Rate limit exceeded. Please try again later.",
		},
		{
			name:        "500 unavailable",
			status:      http.StatusInternalServerError,
			wantErr:     domain.ErrUpstreamUnavailable,
			wantMessage: "Travelpayouts API is currently unavailable. Please try again later.",
		},
		{
			name:        "404 generic status",
			status:      http.StatusNotFound,
			wantMessage: "API responded with status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream error", tt.status)
			}))
			defer server.Close()

			client := NewClient("tok", WithBaseURL(server.URL))

			data, err := client.Fetch(context.Background(), domain.KindCheap, cheapParams())

			require.Error(t, err)
			assert.Nil(t, data)
			assert.Equal(t, tt.wantMessage, err.Error())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			var upstreamErr *domain.UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
		})
	}
}

func TestClient_Fetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Fetch(ctx, domain.KindCheap, cheapParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
	assert.True(t, domain.IsTimeout(err))
}

func TestClient_Fetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	_, err := client.Fetch(context.Background(), domain.KindCheap, cheapParams())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestClient_Fetch_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	_, err := client.Fetch(context.Background(), domain.KindCheap, cheapParams())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrUpstreamTimeout)
}

func TestClient_Fetch_UnknownKindHitsCheapPath(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	_, err := client.Fetch(context.Background(), domain.EndpointKind("bogus"), cheapParams())

	require.NoError(t, err)
	assert.Equal(t, "/v1/prices/cheap", gotPath)
}

func TestClient_Fetch_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient("tok", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Fetch(ctx, domain.KindCheap, cheapParams())

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, domain.IsTimeout(err))
}
