package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/Chiru-Abhiram/mock-interview-ai/config"
)

// defaultThrottle is the fixed pause before every attempt after the very first,
// protecting against upstream burst-rate limits.
const defaultThrottle = 1 * time.Second

// Request describes one generation call at the service boundary.
type Request struct {
	// Prompt is the full prompt text.
	Prompt string
	// ArtifactPath optionally names a local file to attach for multimodal input.
	// The file is uploaded at most once per credential per call.
	ArtifactPath string
	// StrictJSON requests a JSON-only response from the model.
	StrictJSON bool
}

// Generator is the contract the feature layers depend on: submit a request,
// receive response text or a classified error.
type Generator interface {
	Invoke(ctx context.Context, req Request) (string, error)
}

// Invoker executes generation calls with credential and model rotation. A quota
// failure abandons the credential; an unavailable model or transient failure
// moves to the next model on the same credential. The credential and model
// lists are read-only after construction, so a single Invoker is safe for
// concurrent use.
type Invoker struct {
	credentials []string
	models      []string
	factory     BackendFactory
	throttle    time.Duration
	sleep       func(time.Duration)
	logger      *slog.Logger
}

// InvokerOption customizes an Invoker.
type InvokerOption func(*Invoker)

// WithBackendFactory overrides how per-credential backends are constructed.
func WithBackendFactory(factory BackendFactory) InvokerOption {
	return func(inv *Invoker) { inv.factory = factory }
}

// WithThrottle overrides the fixed inter-attempt pause.
func WithThrottle(d time.Duration) InvokerOption {
	return func(inv *Invoker) { inv.throttle = d }
}

// WithSleepFunc overrides the sleep implementation.
func WithSleepFunc(sleep func(time.Duration)) InvokerOption {
	return func(inv *Invoker) { inv.sleep = sleep }
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) InvokerOption {
	return func(inv *Invoker) { inv.logger = logger }
}

// NewInvoker creates an Invoker over the configured credential pool and model
// cascade.
func NewInvoker(cfg *config.Config, opts ...InvokerOption) *Invoker {
	inv := &Invoker{
		credentials: cfg.Credentials,
		models:      cfg.Models,
		factory:     NewGeminiBackend,
		throttle:    defaultThrottle,
		sleep:       time.Sleep,
	}
	for _, opt := range opts {
		opt(inv)
	}
	if inv.logger == nil {
		inv.logger = slog.Default()
	}
	return inv
}

// Invoke runs the nested rotation: credentials outer, models inner. The first
// success short-circuits everything; if every combination fails, the last
// recorded error is returned (ErrExhausted when none was recorded). Uploaded
// artifacts never outlive their credential: they are released, best-effort,
// right after a success or once the credential's models are exhausted.
func (inv *Invoker) Invoke(ctx context.Context, req Request) (string, error) {
	if len(inv.credentials) == 0 {
		return "", config.ErrNoCredentials
	}

	var lastErr error

	for ci, key := range inv.credentials {
		backend, err := inv.factory(ctx, key)
		if err != nil {
			inv.logger.WarnContext(ctx, "failed to initialize backend for credential",
				"credential", ci, "error", err)
			continue
		}

		var artifact *Artifact
		if req.ArtifactPath != "" {
			inv.logger.DebugContext(ctx, "uploading multimodal artifact", "credential", ci)
			artifact, err = backend.Upload(ctx, req.ArtifactPath)
			if err != nil {
				kind := Classify(err)
				inv.logger.WarnContext(ctx, "artifact upload failed",
					"credential", ci, "kind", kind.String(), "error", err)
				if kind != KindQuota {
					lastErr = err
				}
				_ = backend.Close()
				continue
			}
		}

		text, genErr := inv.rotateModels(ctx, backend, req, artifact, ci, &lastErr)

		if artifact != nil {
			// Best-effort cleanup; a failed release is not retried.
			_ = backend.Release(ctx, artifact)
		}
		_ = backend.Close()

		if genErr == nil {
			return text, nil
		}
	}

	if lastErr != nil {
		return "", lastErr
	}
	return "", ErrExhausted
}

// errCredentialExhausted is an internal marker: no model succeeded for the
// current credential. The caller already has the underlying failure in lastErr.
var errCredentialExhausted = errNoSuccess{}

type errNoSuccess struct{}

func (errNoSuccess) Error() string { return "no model succeeded for credential" }

// rotateModels tries each model in cascade order under one credential. It
// returns the response text on success; on failure the credential is considered
// exhausted, either because a quota signal aborted it or because every model
// failed.
func (inv *Invoker) rotateModels(ctx context.Context, backend Backend, req Request, artifact *Artifact, ci int, lastErr *error) (string, error) {
	for mi, model := range inv.models {
		// Throttle every attempt except the very first of the very first credential.
		if ci > 0 || mi > 0 {
			inv.sleep(inv.throttle)
		}

		inv.logger.DebugContext(ctx, "generation attempt", "credential", ci, "model", model)

		text, err := backend.Generate(ctx, model, req.Prompt, artifact, req.StrictJSON)
		if err == nil {
			inv.logger.InfoContext(ctx, "generation succeeded", "credential", ci, "model", model)
			return text, nil
		}

		*lastErr = err
		kind := Classify(err)
		inv.logger.WarnContext(ctx, "generation attempt failed",
			"credential", ci, "model", model, "kind", kind.String(), "error", err)

		if kind == KindQuota {
			// Remaining models on this credential would hit the same limit.
			break
		}
	}

	return "", errCredentialExhausted
}
