package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/five82/showcase/internal/cms"
)

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"unauthorized", &cms.APIError{Code: cms.CodeUnauthorized, Message: "login expired"}, "SIGNED OUT"},
		{"api error", fmt.Errorf("fetch homepage: %w", &cms.APIError{Code: cms.CodeServerError}), "ERROR 500"},
		{"status", fmt.Errorf("fetch product: %w", &cms.StatusError{StatusCode: 502}), "HTTP 502"},
		{"deadline", fmt.Errorf("get: %w", context.DeadlineExceeded), "TIMEOUT"},
		{"refused", errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), "OFFLINE"},
		{"dns", errors.New("dial tcp: lookup cms.invalid: no such host"), "HOST NOT FOUND"},
		{"timeout text", errors.New("i/o Timeout"), "TIMEOUT"},
		{"other", errors.New("boom"), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyConnectionError(tt.err); got != tt.want {
				t.Fatalf("classifyConnectionError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"a longer string", 8, "a lon..."},
		{"abcdef", 3, "abc"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.max); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"abcdefghijklmnop", 10, "abc...mnop"},
		{"abcdefgh", 4, "abcd"},
		{"abc", -1, ""},
	}
	for _, tt := range tests {
		if got := truncateMiddle(tt.in, tt.max); got != tt.want {
			t.Fatalf("truncateMiddle(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}
