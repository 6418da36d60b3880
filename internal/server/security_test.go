package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RarityRoll_Go/internal/session"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(testSecret, time.Hour, "")
	require.NoError(t, err)
	return m
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwarded      string
		trustedProxies []string
		want           string
	}{
		{"plain remote addr", "10.0.0.1:5555", "", nil, "10.0.0.1"},
		{"forwarded from untrusted ignored", "10.0.0.1:5555", "1.2.3.4", nil, "10.0.0.1"},
		{"forwarded from trusted proxy", "10.0.0.1:5555", "1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"rightmost forwarded hop", "10.0.0.1:5555", "9.9.9.9, 1.2.3.4", []string{"10.0.0.1"}, "1.2.3.4"},
		{"no port", "10.0.0.2", "", nil, "10.0.0.2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwarded)
			}
			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}

func TestFailedAuthDetector_CountsPerIP(t *testing.T) {
	d := NewFailedAuthDetector()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.RecordFailedAuth("1.1.1.1")
		}()
	}
	wg.Wait()

	assert.Equal(t, 21, d.RecordFailedAuth("1.1.1.1"))
	assert.Equal(t, 1, d.RecordFailedAuth("2.2.2.2"))
}

func TestFailedAuthDetector_WindowResets(t *testing.T) {
	d := NewFailedAuthDetector()
	d.RecordFailedAuth("1.1.1.1")
	d.lastResetTime = time.Now().Add(-2 * FailedAuthWindow)

	assert.Equal(t, 1, d.RecordFailedAuth("1.1.1.1"))
}

func TestSessionMiddleware(t *testing.T) {
	sessions := newTestSessions(t)
	token, err := sessions.Issue("user-1", time.Now())
	require.NoError(t, err)

	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = session.UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	t.Run("missing token", func(t *testing.T) {
		detector := NewFailedAuthDetector()
		h := SessionMiddleware(sessions, nil, detector)(next)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil)
		req.RemoteAddr = "3.3.3.3:1"

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":"Not authenticated"}`, rec.Body.String())
		assert.Equal(t, 2, detector.RecordFailedAuth("3.3.3.3"))
	})

	t.Run("garbage token", func(t *testing.T) {
		h := SessionMiddleware(sessions, nil, NewFailedAuthDetector())(next)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil)
		req.Header.Set(HeaderAuthorization, "Bearer not-a-jwt")

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("bearer token admitted", func(t *testing.T) {
		gotUser = ""
		h := SessionMiddleware(sessions, nil, NewFailedAuthDetector())(next)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/roll", nil)
		req.Header.Set(HeaderAuthorization, "Bearer "+token)

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "user-1", gotUser)
	})

	t.Run("cookie admitted", func(t *testing.T) {
		gotUser = ""
		h := SessionMiddleware(sessions, nil, NewFailedAuthDetector())(next)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/cooldown", nil)
		req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: token})

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "user-1", gotUser)
	})
}

func TestOptionalSession_NeverRejects(t *testing.T) {
	sessions := newTestSessions(t)
	var ok bool
	h := OptionalSession(sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = session.UserIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/session", nil)
	req.Header.Set(HeaderAuthorization, "Bearer junk")
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, ok)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	h := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	var readErr error
	h := RequestSizeLimitMiddleware(8)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		for readErr == nil {
			_, readErr = r.Body.Read(buf)
		}
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64))))

	var maxErr *http.MaxBytesError
	assert.ErrorAs(t, readErr, &maxErr)
}
