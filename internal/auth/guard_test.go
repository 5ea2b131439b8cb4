package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	identity *Identity
	reason   RejectReason
	err      error
	calls    int
	lastTok  string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (*Identity, RejectReason, error) {
	f.calls++
	f.lastTok = token
	return f.identity, f.reason, f.err
}

func TestGuard_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("accepts a valid bearer token", func(t *testing.T) {
		v := &fakeVerifier{identity: &Identity{UID: "admin-1", Email: "admin@example.com"}}
		g := NewGuard(v)

		id, err := g.Authenticate(ctx, "Bearer good-token")
		require.NoError(t, err)
		assert.Equal(t, "admin-1", id.UID)
		assert.Equal(t, "good-token", v.lastTok)
	})

	t.Run("rejects a missing header without calling the verifier", func(t *testing.T) {
		v := &fakeVerifier{}
		g := NewGuard(v)

		_, err := g.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Zero(t, v.calls)
	})

	t.Run("rejects a malformed scheme", func(t *testing.T) {
		v := &fakeVerifier{}
		g := NewGuard(v)

		for _, header := range []string{"bearer lower", "Basic abc", "Bearer", "Bearer "} {
			_, err := g.Authenticate(ctx, header)
			assert.ErrorIs(t, err, ErrUnauthorized, "header %q", header)
		}
		assert.Zero(t, v.calls)
	})

	t.Run("collapses every verifier failure into the same error", func(t *testing.T) {
		for _, reason := range []RejectReason{ReasonInvalidToken, ReasonExpired, ReasonUserDisabled, ReasonTooManyAttempts, ReasonUnknown} {
			g := NewGuard(&fakeVerifier{reason: reason, err: errors.New("verification failed")})
			_, err := g.Authenticate(ctx, "Bearer whatever")
			assert.ErrorIs(t, err, ErrUnauthorized, "reason %s", reason)
		}
	})
}

func TestRequire(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(v TokenVerifier) *gin.Engine {
		r := gin.New()
		r.GET("/admin", Require(NewGuard(v)), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"uid": c.GetString(CtxIdentityUID)})
		})
		return r
	}

	t.Run("passes the identity through on success", func(t *testing.T) {
		r := newRouter(&fakeVerifier{identity: &Identity{UID: "admin-1"}})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin-1")
	})

	t.Run("missing and garbage credentials yield identical bodies", func(t *testing.T) {
		r := newRouter(&fakeVerifier{err: errors.New("bad token")})

		missing := httptest.NewRecorder()
		r.ServeHTTP(missing, httptest.NewRequest(http.MethodGet, "/admin", nil))

		garbage := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		r.ServeHTTP(garbage, req)

		assert.Equal(t, http.StatusUnauthorized, missing.Code)
		assert.Equal(t, http.StatusUnauthorized, garbage.Code)

		var a, b map[string]any
		require.NoError(t, json.Unmarshal(missing.Body.Bytes(), &a))
		require.NoError(t, json.Unmarshal(garbage.Body.Bytes(), &b))

		// Timestamps differ; everything observable must not.
		delete(a, "timestamp")
		delete(b, "timestamp")
		assert.Equal(t, a, b)
		assert.Equal(t, "UNAUTHORIZED", a["code"])
	})
}
