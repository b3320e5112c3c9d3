package gemini

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestClassifyUpstreamError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want errorClass
	}{
		{
			name: "500 internal server error",
			err:  genai.APIError{Code: 500, Status: "INTERNAL", Message: "internal error"},
			want: classTransient,
		},
		{
			name: "503 unavailable",
			err:  genai.APIError{Code: 503, Status: "UNAVAILABLE", Message: "overloaded"},
			want: classTransient,
		},
		{
			name: "INTERNAL status without 5xx code",
			err:  genai.APIError{Code: 0, Status: "INTERNAL"},
			want: classTransient,
		},
		{
			name: "UNAVAILABLE status without 5xx code",
			err:  genai.APIError{Code: 0, Status: "UNAVAILABLE"},
			want: classTransient,
		},
		{
			name: "400 bad request",
			err:  genai.APIError{Code: 400, Status: "INVALID_ARGUMENT", Message: "bad input"},
			want: classPermanent,
		},
		{
			name: "401 unauthorized",
			err:  genai.APIError{Code: 401, Status: "UNAUTHENTICATED"},
			want: classPermanent,
		},
		{
			name: "403 forbidden",
			err:  genai.APIError{Code: 403, Status: "PERMISSION_DENIED"},
			want: classPermanent,
		},
		{
			name: "429 resource exhausted",
			err:  genai.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED"},
			want: classPermanent,
		},
		{
			name: "wrapped 502",
			err:  fmt.Errorf("call failed: %w", genai.APIError{Code: 502, Status: "BAD_GATEWAY"}),
			want: classTransient,
		},
		{
			name: "plain transport error",
			err:  errors.New("connection reset by peer"),
			want: classTransient,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyUpstreamError(tc.err))
		})
	}
}
