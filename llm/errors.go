package llm

import (
	"errors"
	"net/http"

	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Kind classifies a generation-call failure for rotation decisions.
type Kind int

const (
	// KindTransient covers any failure with no recognized signal, including
	// malformed responses. The rotation tries the next model on the same credential.
	KindTransient Kind = iota
	// KindQuota indicates an upstream rate or usage limit. The rotation abandons
	// the credential entirely.
	KindQuota
	// KindModelUnavailable indicates the requested model is not served. The
	// rotation tries the next model on the same credential.
	KindModelUnavailable
)

// String returns a human-readable name for logging.
func (k Kind) String() string {
	switch k {
	case KindQuota:
		return "quota"
	case KindModelUnavailable:
		return "model_unavailable"
	default:
		return "transient"
	}
}

// ErrExhausted is returned by Invoke when every credential and model combination
// failed without recording a more specific error.
var ErrExhausted = errors.New("all credentials and models exhausted")

// grpcStatuser is implemented by gRPC-transport errors, including the gax
// APIError the genai SDK wraps them in.
type grpcStatuser interface {
	GRPCStatus() *status.Status
}

// Classify maps an error onto the rotation taxonomy. Classification is
// structural: it inspects machine-readable codes on the error chain (HTTP status
// for REST transport, gRPC codes otherwise) and never matches on message text.
func Classify(err error) Kind {
	if err == nil {
		return KindTransient
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusTooManyRequests:
			return KindQuota
		case http.StatusNotFound:
			return KindModelUnavailable
		}
		return KindTransient
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		gs, ok := e.(grpcStatuser)
		if !ok {
			continue
		}
		switch gs.GRPCStatus().Code() {
		case codes.ResourceExhausted:
			return KindQuota
		case codes.NotFound:
			return KindModelUnavailable
		}
		return KindTransient
	}

	return KindTransient
}
