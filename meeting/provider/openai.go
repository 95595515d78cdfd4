// Package provider implements the meeting.TextGenerator seam against the
// OpenAI Responses API.
package provider

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"

	"genai-cost-estimator/meeting"
)

// analysisPayload mirrors the four-field response shape requested from the
// model. It exists only to derive the structured-output schema; the analyzer
// parses the raw text itself.
type analysisPayload struct {
	Summary      string   `json:"summary"`
	Actions      []string `json:"actions"`
	Positives    []string `json:"positives"`
	Improvements []string `json:"improvements"`
}

var analysisSchema = generateSchema[analysisPayload]()

// OpenAI is a TextGenerator backed by the OpenAI Responses API. Each Generate
// call is a single attempt: no retry, no backoff (documented behavior).
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds a generator for the given model using an explicit API key.
func NewOpenAI(apiKey, model string) *OpenAI {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{client: &client, model: model}
}

// Generate issues one generation request and returns the response text plus
// usage metadata when the service reported any.
func (p *OpenAI) Generate(ctx context.Context, prompt string) (meeting.Generation, error) {
	if p.client == nil {
		return meeting.Generation{}, errors.New("provider.OpenAI: client is nil")
	}
	if p.model == "" {
		return meeting.Generation{}, errors.New("provider.OpenAI: model is empty")
	}

	format := responses.ResponseFormatTextConfigUnionParam{
		OfJSONSchema: &responses.ResponseFormatTextJSONSchemaConfigParam{
			Name:        "MeetingAnalysis",
			Schema:      analysisSchema,
			Strict:      openai.Bool(true),
			Description: openai.String("Meeting analysis JSON"),
			Type:        "json_schema",
		},
	}

	params := responses.ResponseNewParams{
		Model:           p.model,
		MaxOutputTokens: openai.Int(2500),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
		Text: responses.ResponseTextConfigParam{
			Format: format,
		},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return meeting.Generation{}, err
	}

	var usage *meeting.TokenUsage
	if resp.JSON.Usage.Valid() {
		usage = &meeting.TokenUsage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
		}
	}
	return meeting.Generation{Text: resp.OutputText(), Usage: usage}, nil
}
