package session

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestIssueParseRoundTrip(t *testing.T) {
	svc := NewService([]byte("test-key"))

	id, token, err := svc.Issue()
	require.NoError(t, err)
	require.NotEmpty(t, id)
	require.NotEmpty(t, token)

	parsed, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseGarbageToken(t *testing.T) {
	svc := NewService([]byte("test-key"))
	_, err := svc.Parse("not-a-token")
	assert.Error(t, err)
}

func TestParseRejectsForeignKey(t *testing.T) {
	_, token, err := NewService([]byte("other-key")).Issue()
	require.NoError(t, err)

	_, parseErr := NewService([]byte("test-key")).Parse(token)
	assert.Error(t, parseErr)
}

func TestMiddlewareIssuesSession(t *testing.T) {
	svc := NewService([]byte("test-key"))

	var seen string
	handler := Middleware(svc, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotEmpty(t, seen)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)

	id, err := svc.Parse(cookies[0].Value)
	require.NoError(t, err)
	assert.Equal(t, seen, id)
}

func TestMiddlewareReusesValidCookie(t *testing.T) {
	svc := NewService([]byte("test-key"))
	id, token, err := svc.Issue()
	require.NoError(t, err)

	var seen string
	handler := Middleware(svc, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, id, seen)
	assert.Empty(t, rec.Result().Cookies(), "an existing session must not be reissued")
}

func TestMiddlewareReplacesTamperedCookie(t *testing.T) {
	svc := NewService([]byte("test-key"))
	_, token, err := NewService([]byte("other-key")).Issue()
	require.NoError(t, err)

	var seen string
	handler := Middleware(svc, quietLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: token})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.NotEmpty(t, seen)
	require.Len(t, rec.Result().Cookies(), 1, "tampered cookie should be replaced")

	id, parseErr := svc.Parse(rec.Result().Cookies()[0].Value)
	require.NoError(t, parseErr)
	assert.Equal(t, seen, id)
}
