package llm

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify_HTTPCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"rate limit", &googleapi.Error{Code: 429, Message: "quota exceeded"}, KindQuota},
		{"model not found", &googleapi.Error{Code: 404, Message: "model not found"}, KindModelUnavailable},
		{"server error", &googleapi.Error{Code: 500, Message: "internal"}, KindTransient},
		{"bad request", &googleapi.Error{Code: 400, Message: "invalid argument"}, KindTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestClassify_GRPCCodes(t *testing.T) {
	assert.Equal(t, KindQuota, Classify(status.Error(codes.ResourceExhausted, "rate limited")))
	assert.Equal(t, KindModelUnavailable, Classify(status.Error(codes.NotFound, "no such model")))
	assert.Equal(t, KindTransient, Classify(status.Error(codes.Internal, "oops")))
}

func TestClassify_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("failed to generate content: %w", &googleapi.Error{Code: 429})
	assert.Equal(t, KindQuota, Classify(wrapped))

	wrapped = fmt.Errorf("upload failed: %w", &googleapi.Error{Code: 404})
	assert.Equal(t, KindModelUnavailable, Classify(wrapped))
}

func TestClassify_NoSignalIsTransient(t *testing.T) {
	assert.Equal(t, KindTransient, Classify(errors.New("connection reset")))
	assert.Equal(t, KindTransient, Classify(nil))

	// Message text mentioning a code must not influence classification.
	assert.Equal(t, KindTransient, Classify(errors.New("saw a 429 in the logs once")))
}
