package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("correct horse")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("wrong horse")))
}

func TestIPRateLimiter_Limits(t *testing.T) {
	limiter := NewIPRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := limiter.LimitMiddleware(next)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/login", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func signedToken(t *testing.T, key []byte, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	tokenString := signedToken(t, env.JWTkey, jwt.MapClaims{
		"user_id": 42,
		"login":   "ana",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var gotID int
	var gotLogin string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, _ = r.Context().Value("userID").(int)
		gotLogin, _ = r.Context().Value("userLogin").(string)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: tokenString})
	rec := httptest.NewRecorder()

	env.AuthMiddleware(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 42, gotID)
	assert.Equal(t, "ana", gotLogin)
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	rec := httptest.NewRecorder()

	env.AuthMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/auth/", rec.Header().Get("Location"))
}

func TestAuthMiddleware_WrongKey(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	tokenString := signedToken(t, []byte("other-key"), jwt.MapClaims{
		"user_id": 42,
		"login":   "ana",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/history", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: tokenString})
	rec := httptest.NewRecorder()

	env.AuthMiddleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestRedirectIfLoggedIn(t *testing.T) {
	env := &Authenv{JWTkey: []byte("test-key")}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := env.RedirectIfLoggedIn(next)

	// Anonymous visitors reach the login page.
	req := httptest.NewRequest(http.MethodGet, "/auth/", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Logged-in visitors are sent home.
	tokenString := signedToken(t, env.JWTkey, jwt.MapClaims{
		"user_id": 42,
		"login":   "ana",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	req = httptest.NewRequest(http.MethodGet, "/auth/", nil)
	req.AddCookie(&http.Cookie{Name: "session_token", Value: tokenString})
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}
