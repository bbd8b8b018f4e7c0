package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"employeeform/internal/domain/employee"
)

func noContent() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func sessionLimited(limit int) http.Handler {
	sessions := employee.NewSessions(time.Hour)
	return Session(sessions, false, zap.NewNop(), nil)(MutationRateLimit(limit, time.Minute)(noContent()))
}

func TestMutationRateLimitUsesSessionBeforeIP(t *testing.T) {
	limited := sessionLimited(1)

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "198.51.100.11:2222"
	firstRec := httptest.NewRecorder()
	limited.ServeHTTP(firstRec, first)
	cookies := firstRec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected a session cookie")
	}

	send := func(remote string, cookie *http.Cookie) int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = remote
		if cookie != nil {
			req.AddCookie(cookie)
		}
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("198.51.100.11:2222", cookies[0]); code != http.StatusNoContent {
		t.Fatalf("expected first mutation to pass, got %d", code)
	}
	if code := send("198.51.100.12:3333", cookies[0]); code != http.StatusTooManyRequests {
		t.Fatalf("expected the session to be throttled from another IP, got %d", code)
	}
	if code := send("198.51.100.12:3333", nil); code != http.StatusNoContent {
		t.Fatalf("expected a new visitor on another IP to pass, got %d", code)
	}
}

func TestMutationRateLimitIgnoresUnknownCookies(t *testing.T) {
	limited := sessionLimited(1)

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "203.0.113.50:5555"
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: fmt.Sprintf("forged-%d", i)})
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i+1, want, rec.Code)
		}
	}
}

func TestMutationRateLimitFallsBackToIP(t *testing.T) {
	limited := MutationRateLimit(1, time.Minute)(noContent())

	for i, want := range []int{http.StatusNoContent, http.StatusTooManyRequests} {
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/employees/x", nil)
		req.RemoteAddr = "203.0.113.10:4444"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Fatalf("request %d: expected %d, got %d", i+1, want, rec.Code)
		}
	}
}

func TestMutationRateLimitIgnoresReads(t *testing.T) {
	limited := MutationRateLimit(1, time.Minute)(noContent())
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.1:1000"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		if rec.Code != http.StatusNoContent {
			t.Fatalf("read %d should not be limited, got %d", i+1, rec.Code)
		}
	}
}

func TestMutationRateLimitWindowReset(t *testing.T) {
	limited := MutationRateLimit(1, 40*time.Millisecond)(noContent())

	send := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", nil)
		req.RemoteAddr = "192.0.2.20:1111"
		rec := httptest.NewRecorder()
		limited.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected first request to pass, got %d", code)
	}
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", code)
	}
	time.Sleep(50 * time.Millisecond)
	if code := send(); code != http.StatusNoContent {
		t.Fatalf("expected request after window reset to pass, got %d", code)
	}
}

func TestMutationRateLimitReturnsRetryMetadata(t *testing.T) {
	limited := MutationRateLimit(1, time.Minute)(noContent())

	req1 := httptest.NewRequest(http.MethodPost, "/", nil)
	req1.RemoteAddr = "192.0.2.30:1234"
	limited.ServeHTTP(httptest.NewRecorder(), req1)

	req2 := httptest.NewRequest(http.MethodPost, "/", nil)
	req2.RemoteAddr = "192.0.2.30:1234"
	rec := httptest.NewRecorder()
	limited.ServeHTTP(rec, req2)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected throttled response, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Fatal("expected Retry-After header")
	}
	if rec.Header().Get("X-RateLimit-Reset") == "" {
		t.Fatal("expected X-RateLimit-Reset header")
	}
}
