package morpheus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/morphkit"
	"github.com/cours-de-latin/morphkit/internal/config"
)

const touTranscript = "<NL>N tou=,o(</NL>\n:raw tou=\n\n:lem o(\n"

const legeiTranscript = "" +
	":raw le/gei\n" +
	"\n" +
	":workw le/gei\n" +
	":lem le/gw\n" +
	":stem leg\t \tw_stem\t\n" +
	":end ei\t pres ind act 3rd sg\t\tw_stem\n" +
	":end ei\t pres ind mp 2nd sg\t\tw_stem\n"

func testConfig(endpoint string) config.MorpheusConfig {
	return config.MorpheusConfig{
		Endpoint:      endpoint,
		Output:        "full",
		Timeout:       config.Duration(time.Second),
		RetryAttempts: 2,
		RetryDelay:    config.Duration(time.Millisecond),
	}
}

func newTestClient(t *testing.T, srv *httptest.Server, mutate func(*config.MorpheusConfig)) *Client {
	t.Helper()
	cfg := testConfig(strings.TrimPrefix(srv.URL, "http://"))
	if mutate != nil {
		mutate(&cfg)
	}
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestClient_FetchTranscript_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/greek/tou=", r.URL.Path)
		assert.Equal(t, "/greek/tou%3D", r.URL.EscapedPath())
		assert.Equal(t, "opts=d?opts=n", r.URL.RawQuery)
		_, _ = w.Write([]byte(touTranscript))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	got, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.NoError(t, err)
	assert.Equal(t, touTranscript, got)
}

func TestClient_CompactOutput(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latin/amo", r.URL.Path)
		assert.Equal(t, "opts=n", r.URL.RawQuery)
		_, _ = w.Write([]byte(":raw amo\n"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *config.MorpheusConfig) { cfg.Output = "compact" })
	got, err := c.FetchTranscript(context.Background(), "amo", morphkit.Latin)
	require.NoError(t, err)
	assert.Equal(t, ":raw amo\n", got)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	c, err := New(testConfig("localhost:1315"))
	require.NoError(t, err)

	tests := []struct {
		word string
		lang morphkit.Language
		want string
	}{
		{"lo/gos", morphkit.Greek, "http://localhost:1315/greek/lo%2Fgos?opts=d?opts=n"},
		{"*tou=", morphkit.Greek, "http://localhost:1315/greek/%2Atou%3D?opts=d?opts=n"},
		{"o(", morphkit.Greek, "http://localhost:1315/greek/o%28?opts=d?opts=n"},
		{"rosa rosae", morphkit.Latin, "http://localhost:1315/latin/rosa%20rosae?opts=d?opts=n"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.URL(tt.word, tt.lang), tt.word)
	}
}

func TestClient_RetriesServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(touTranscript))
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	got, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.NoError(t, err)
	assert.Equal(t, touTranscript, got)
	assert.EqualValues(t, 3, calls.Load())
}

func TestClient_RetriesExhausted(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	_, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	assert.Contains(t, err.Error(), "3 attempts")
	assert.EqualValues(t, 3, calls.Load())
}

func TestClient_ZeroRetries(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *config.MorpheusConfig) { cfg.RetryAttempts = 0 })
	_, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadGateway))
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_ClientErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, nil)
	_, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusNotFound))
	assert.False(t, IsStatus(err, http.StatusInternalServerError))
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_TranscriptSizeLimit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(touTranscript))
	}))
	defer srv.Close()

	endpoint := strings.TrimPrefix(srv.URL, "http://")
	size := int64(len(touTranscript))

	exact, err := New(testConfig(endpoint), WithMaxTranscriptBytes(size))
	require.NoError(t, err)
	got, err := exact.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.NoError(t, err)
	assert.Equal(t, touTranscript, got)

	short, err := New(testConfig(endpoint), WithMaxTranscriptBytes(size-1))
	require.NoError(t, err)
	_, err = short.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranscriptTooLarge)
	assert.EqualValues(t, 2, calls.Load(), "an oversized transcript is not retried")
}

func TestClient_ContextCancelledDuringDelay(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *config.MorpheusConfig) { cfg.RetryDelay = config.Duration(time.Hour) })
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchTranscript(ctx, "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.EqualValues(t, 1, calls.Load())
}

func TestClient_RequestTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv, func(cfg *config.MorpheusConfig) {
		cfg.Timeout = config.Duration(20 * time.Millisecond)
		cfg.RetryAttempts = 0
	})
	_, err := c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "request")
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := strings.TrimPrefix(srv.URL, "http://")
	srv.Close()

	cfg := testConfig(endpoint)
	cfg.RetryAttempts = 1
	c, err := New(cfg)
	require.NoError(t, err)

	_, err = c.FetchTranscript(context.Background(), "tou=", morphkit.Greek)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 attempts")
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.MorpheusConfig)
		errMsg string
	}{
		{"no port", func(c *config.MorpheusConfig) { c.Endpoint = "localhost" }, "host:port"},
		{"named port", func(c *config.MorpheusConfig) { c.Endpoint = "localhost:http" }, "not numeric"},
		{"negative retries", func(c *config.MorpheusConfig) { c.RetryAttempts = -1 }, "retry attempts"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := testConfig("localhost:1315")
			tt.mutate(&cfg)
			_, err := New(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestClient_UnsupportedLanguage(t *testing.T) {
	t.Parallel()

	c, err := New(testConfig("localhost:1315"))
	require.NoError(t, err)
	_, err = c.FetchTranscript(context.Background(), "x", morphkit.Language("hebrew"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported language")
}

func TestClient_AnalyzeWord(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(legeiTranscript))
	}))
	defer srv.Close()

	a, err := morphkit.New()
	require.NoError(t, err)

	res, err := a.AnalyzeWord(context.Background(), newTestClient(t, srv, nil), "le/gei", morphkit.Greek)
	require.NoError(t, err)
	assert.Equal(t, "le/gei", res.Word)
	assert.Equal(t, 1, res.Blocks)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Records, 2)
	assert.Equal(t, []string{"V-PAI-3S"}, res.Records[0].Tags)
	assert.Equal(t, []string{"V-PEI-2S"}, res.Records[1].Tags)
}
