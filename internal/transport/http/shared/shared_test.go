package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"employeeform/internal/domain/employee"
)

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		want       string
	}{
		{name: "forwarded first hop", forwarded: "203.0.113.5, 10.0.0.1", remoteAddr: "10.0.0.1:1234", want: "203.0.113.5"},
		{name: "remote addr", remoteAddr: "198.51.100.7:5555", want: "198.51.100.7"},
		{name: "remote addr without port", remoteAddr: "198.51.100.8", want: "198.51.100.8"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tc.remoteAddr
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := ClientIP(req); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestFailValidation(t *testing.T) {
	rec := httptest.NewRecorder()
	verr := employee.ValidateDraft(employee.EmptyDraft())
	if !FailValidation(rec, "req-1", verr) {
		t.Fatal("expected validation error to be written")
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}

	other := httptest.NewRecorder()
	if FailValidation(other, "req-2", errors.New("boom")) {
		t.Fatal("non-validation errors must be left to the caller")
	}
	if other.Body.Len() != 0 {
		t.Fatal("nothing should be written for non-validation errors")
	}
}
