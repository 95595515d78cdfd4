package meeting

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Generation is one response from a text-generation service: the raw text body
// plus optional usage metadata. Usage is nil when the service reported none.
type Generation struct {
	Text  string
	Usage *TokenUsage
}

// TextGenerator is the capability seam to the external generation service: given
// a prompt, return the generated text and any reported token usage. The analyzer
// depends only on this contract, not on a specific provider's transport.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (Generation, error)
}

// Options configures an Analyzer.
type Options struct {
	// ChunkSize is the maximum transcript chunk length in runes (default 30000).
	ChunkSize int

	// ChunkOverlap is the rune overlap between consecutive chunks (default 1000).
	ChunkOverlap int

	// Logger receives per-chunk diagnostics (default: a fresh logrus logger).
	Logger *logrus.Logger
}

// Analyzer runs the transcript analysis pipeline: split into chunks, request an
// analysis for each chunk in order, merge the per-chunk results, and price the
// accumulated token usage.
type Analyzer struct {
	gen          TextGenerator
	rates        Rates
	chunkSize    int
	chunkOverlap int
	log          *logrus.Logger
}

// New builds an Analyzer around a generator and a pricing entry.
func New(gen TextGenerator, rates Rates, opts Options) (*Analyzer, error) {
	if gen == nil {
		return nil, errors.New("meeting.New: generator is nil")
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if opts.ChunkOverlap == 0 {
		opts.ChunkOverlap = DefaultChunkOverlap
	}
	if opts.ChunkSize < 0 {
		return nil, errors.New("meeting.New: chunk size must be > 0")
	}
	if opts.ChunkOverlap < 0 || opts.ChunkOverlap >= opts.ChunkSize {
		return nil, errors.New("meeting.New: chunk overlap must be in [0, chunk size)")
	}
	if opts.Logger == nil {
		opts.Logger = logrus.New()
	}
	return &Analyzer{
		gen:          gen,
		rates:        rates,
		chunkSize:    opts.ChunkSize,
		chunkOverlap: opts.ChunkOverlap,
		log:          opts.Logger,
	}, nil
}

// AnalyzeFile reads a transcript file and analyzes it. A missing file surfaces
// as a not-found error before any request is issued.
func (a *Analyzer) AnalyzeFile(ctx context.Context, path string) (Report, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read transcript: %w", err)
	}
	return a.Analyze(ctx, string(b))
}

// Analyze runs the one-pass pipeline over a transcript. Each chunk gets a single
// synchronous request; token usage is accumulated regardless of whether the
// response parses. A response that does not parse as the four-field JSON shape
// is logged as a warning and contributes nothing to the merged result. Any
// request error aborts the run with no partial results.
func (a *Analyzer) Analyze(ctx context.Context, transcript string) (Report, error) {
	var usage TokenUsage
	var results []AnalysisResult

	chunkNum := 0
	for chunk := range Chunks(transcript, a.chunkSize, a.chunkOverlap) {
		chunkNum++

		gen, err := a.gen.Generate(ctx, buildPrompt(chunk))
		if err != nil {
			return Report{}, fmt.Errorf("generate (chunk %d): %w", chunkNum, err)
		}
		usage.Add(gen.Usage)

		var res AnalysisResult
		if err := decodeModelJSON(gen.Text, &res); err != nil {
			a.log.Warnf("could not parse model output as JSON: %s...", truncate(gen.Text, 100))
			continue
		}
		results = append(results, res)
	}

	return Report{
		Result: MergeResults(results),
		Usage:  usage,
		Cost:   EstimateCost(usage, a.rates),
	}, nil
}

const promptTemplate = `Analyze the following meeting transcript and provide:
1. A clear and concise summary of the main points discussed
2. Key decisions or actions agreed upon, including who is responsible and any deadlines
3. What went well in the meeting
4. What could be improved about the meeting

Transcript:
%s

Please format your response in JSON with these keys:
- summary
- actions
- positives
- improvements`

func buildPrompt(chunk string) string {
	return fmt.Sprintf(promptTemplate, chunk)
}

// decodeModelJSON unmarshals JSON from a model response, with a small amount of
// robustness for cases where the model wraps the JSON in extra text or returns
// leading/trailing whitespace.
func decodeModelJSON(outputText string, v any) error {
	s := strings.TrimSpace(outputText)
	if s == "" {
		return io.ErrUnexpectedEOF
	}

	// Fast path: valid JSON as-is.
	if err := json.Unmarshal([]byte(s), v); err == nil {
		return nil
	}

	// Fallback: attempt to extract the first top-level JSON object.
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start == -1 || end == -1 || end <= start {
		return fmt.Errorf("no JSON object found in model output (len=%d)", len(s))
	}

	sub := s[start : end+1]
	if err := json.Unmarshal([]byte(sub), v); err != nil {
		return fmt.Errorf("failed to unmarshal extracted JSON (len=%d): %w", len(sub), err)
	}
	return nil
}

func truncate(s string, max int) string {
	s = strings.TrimSpace(s)
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
