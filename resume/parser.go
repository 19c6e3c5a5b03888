package resume

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/Chiru-Abhiram/mock-interview-ai/llm"
	"github.com/Chiru-Abhiram/mock-interview-ai/prompts"
	"github.com/Chiru-Abhiram/mock-interview-ai/schemas"
	"github.com/Chiru-Abhiram/mock-interview-ai/types"
)

// minNativeTextLength is the threshold below which natively extracted text is
// treated as effectively empty (e.g. a scanned image) and the chain escalates
// to multimodal OCR+structuring.
const minNativeTextLength = 50

// Parser runs the resume acquisition fallback chain.
type Parser struct {
	gen       llm.Generator
	extractor TextExtractor
	logger    *slog.Logger
}

// ParserOption customizes a Parser.
type ParserOption func(*Parser)

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) ParserOption {
	return func(p *Parser) { p.logger = logger }
}

// NewParser creates a Parser over a generation invoker and a native text
// extractor.
func NewParser(gen llm.Generator, extractor TextExtractor, opts ...ParserOption) *Parser {
	p := &Parser{gen: gen, extractor: extractor}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// structuringPayload is the wire shape of structuring responses. List items may
// arrive as strings or objects; they are normalized after unmarshaling.
type structuringPayload struct {
	RawText    string            `json:"raw_text"`
	Skills     []json.RawMessage `json:"skills"`
	Experience []json.RawMessage `json:"experience"`
	Projects   []json.RawMessage `json:"projects"`
}

// Parse turns a resume document into a structured profile. Only two failures
// are fatal: an unsupported document extension and a non-quota failure of the
// multimodal tier. Every other path degrades to a best-effort profile.
func (p *Parser) Parse(ctx context.Context, path string) (*types.ResumeProfile, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	native, err := p.extractor.Extract(path, format)
	if err != nil {
		// A failed native read is indistinguishable from an empty text layer for
		// the chain's purposes; escalate to the multimodal tier.
		p.logger.WarnContext(ctx, "native extraction failed", "path", path, "error", err)
		native = ""
	}
	text := strings.TrimSpace(native)

	if len(text) < minNativeTextLength {
		p.logger.InfoContext(ctx, "native extraction too short, escalating to multimodal scan",
			"path", path, "length", len(text))
		return p.parseMultimodal(ctx, path, format, text)
	}

	return p.structureText(ctx, path, format, text)
}

// parseMultimodal runs the combined OCR+structuring tier: one generation call
// that both transcribes and classifies the document. A quota failure falls back
// to keyword extraction over whatever native text was recovered; any other
// failure is fatal.
func (p *Parser) parseMultimodal(ctx context.Context, path string, format Format, recovered string) (*types.ResumeProfile, error) {
	prompt := prompts.MustGet("resume.json", "multimodal_scan")

	raw, err := p.gen.Invoke(ctx, llm.Request{Prompt: prompt, ArtifactPath: path, StrictJSON: true})
	if err != nil {
		if llm.Classify(err) == llm.KindQuota {
			p.logger.WarnContext(ctx, "quota exhausted during multimodal scan, using keyword fallback", "path", path)
			return p.keywordProfile(path, format, recovered), nil
		}
		return nil, fmt.Errorf("multimodal resume scan failed: %w", err)
	}

	payload, err := decodeStructuringPayload(raw)
	if err != nil {
		return nil, fmt.Errorf("multimodal resume scan returned an invalid payload: %w", err)
	}

	return p.profileFromPayload(path, format, payload, strings.TrimSpace(payload.RawText)), nil
}

// structureText runs the direct structuring tier over natively extracted text.
// A quota failure falls back to keyword extraction; any other failure degrades
// to a raw-text-only profile rather than failing the request.
func (p *Parser) structureText(ctx context.Context, path string, format Format, text string) (*types.ResumeProfile, error) {
	prompt := prompts.Format(prompts.MustGet("resume.json", "structure_text"), map[string]string{
		"ResumeText": text,
	})

	raw, err := p.gen.Invoke(ctx, llm.Request{Prompt: prompt, StrictJSON: true})
	if err != nil {
		if llm.Classify(err) == llm.KindQuota {
			p.logger.WarnContext(ctx, "quota exhausted during structuring, using keyword fallback", "path", path)
			return p.keywordProfile(path, format, text), nil
		}
		p.logger.WarnContext(ctx, "structuring failed, returning raw-text profile", "path", path, "error", err)
		return p.rawProfile(path, format, text), nil
	}

	payload, err := decodeStructuringPayload(raw)
	if err != nil {
		p.logger.WarnContext(ctx, "structuring returned an invalid payload, returning raw-text profile",
			"path", path, "error", err)
		return p.rawProfile(path, format, text), nil
	}

	return p.profileFromPayload(path, format, payload, text), nil
}

// keywordProfile builds a profile with the deterministic keyword tier, or the
// minimal placeholder profile when no text at all was recovered.
func (p *Parser) keywordProfile(path string, format Format, text string) *types.ResumeProfile {
	if strings.TrimSpace(text) == "" {
		return placeholderProfile(path, format)
	}

	skills, experience, projects := ExtractKeywordProfile(text)
	return &types.ResumeProfile{
		Text:       text,
		Filename:   filepath.Base(path),
		FileType:   string(format),
		Skills:     skills,
		Experience: experience,
		Projects:   projects,
	}
}

// placeholderProfile is the last resort: a minimal profile with generic
// entries, so the interview pipeline can still proceed.
func placeholderProfile(path string, format Format) *types.ResumeProfile {
	return &types.ResumeProfile{
		Text:       "Resume uploaded (image-based, quota exhausted)",
		Filename:   filepath.Base(path),
		FileType:   string(format),
		Skills:     []string{"General Software Development"},
		Experience: []string{"Professional Experience"},
		Projects:   []string{},
	}
}

func (p *Parser) rawProfile(path string, format Format, text string) *types.ResumeProfile {
	return &types.ResumeProfile{
		Text:       text,
		Filename:   filepath.Base(path),
		FileType:   string(format),
		Skills:     []string{},
		Experience: []string{},
		Projects:   []string{},
	}
}

func (p *Parser) profileFromPayload(path string, format Format, payload *structuringPayload, text string) *types.ResumeProfile {
	return &types.ResumeProfile{
		Text:       text,
		Filename:   filepath.Base(path),
		FileType:   string(format),
		Skills:     normalizeItems(payload.Skills),
		Experience: normalizeItems(payload.Experience),
		Projects:   normalizeItems(payload.Projects),
	}
}

// decodeStructuringPayload validates and unmarshals a structuring response.
func decodeStructuringPayload(raw string) (*structuringPayload, error) {
	cleaned := []byte(llm.CleanJSONBlock(raw))

	if err := schemas.Validate(schemas.ResumeProfile, cleaned); err != nil {
		return nil, err
	}

	var payload structuringPayload
	if err := json.Unmarshal(cleaned, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse structuring response: %w", err)
	}
	return &payload, nil
}

// normalizeItems repairs loosely-typed list entries: strings pass through,
// objects contribute their name/title/role/skill value (or their JSON form when
// none is present), and any other scalar is stringified.
func normalizeItems(items []json.RawMessage) []string {
	out := []string{}
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal(item, &obj); err == nil {
			out = append(out, nameFromObject(obj, item))
			continue
		}

		var v any
		if err := json.Unmarshal(item, &v); err == nil {
			out = append(out, fmt.Sprint(v))
		}
	}
	return out
}

func nameFromObject(obj map[string]any, raw json.RawMessage) string {
	for _, key := range []string{"name", "title", "role", "skill"} {
		if v, ok := obj[key].(string); ok && v != "" {
			return v
		}
	}
	return string(raw)
}
