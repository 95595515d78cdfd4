package meeting

import "strings"

// AnalysisResult is the model-produced analysis artifact for one transcript chunk,
// and also the shape of the merged whole-meeting result.
type AnalysisResult struct {
	// Summary is a tight prose summary of the main points discussed.
	Summary string `json:"summary"`

	// Actions are decisions or actions agreed upon, including owners and deadlines.
	Actions []string `json:"actions"`

	// Positives are things that went well in the meeting.
	Positives []string `json:"positives"`

	// Improvements are things that could be improved about the meeting.
	Improvements []string `json:"improvements"`
}

// TokenUsage accumulates service-reported token counts across chunk requests.
// Counts come from the service's usage metadata, never from local estimation.
type TokenUsage struct {
	InputTokens  int64 `json:"input_tokens"`
	OutputTokens int64 `json:"output_tokens"`
}

// Add folds another usage report into the accumulator. A nil report adds nothing:
// the service may legitimately omit usage metadata on a response.
func (u *TokenUsage) Add(other *TokenUsage) {
	if other == nil {
		return
	}
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
}

// Rates are per-1000-token billing rates for one model, in currency units.
type Rates struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// CostEstimate is derived from accumulated TokenUsage and a Rates entry.
type CostEstimate struct {
	InputCost  float64 `json:"input_cost"`
	OutputCost float64 `json:"output_cost"`
	TotalCost  float64 `json:"total_cost"`
}

// EstimateCost prices accumulated usage against per-1000-token rates.
func EstimateCost(usage TokenUsage, rates Rates) CostEstimate {
	inputCost := float64(usage.InputTokens) / 1000 * rates.Input
	outputCost := float64(usage.OutputTokens) / 1000 * rates.Output
	return CostEstimate{
		InputCost:  inputCost,
		OutputCost: outputCost,
		TotalCost:  inputCost + outputCost,
	}
}

// Report is the artifact of one analyzer run.
type Report struct {
	Result AnalysisResult `json:"result"`
	Usage  TokenUsage     `json:"usage"`
	Cost   CostEstimate   `json:"cost"`
}

// MergeResults combines per-chunk results in chunk order: summaries are joined
// with newline separators, list fields are concatenated. Chunks whose responses
// failed to parse are simply absent from the input slice.
func MergeResults(results []AnalysisResult) AnalysisResult {
	merged := AnalysisResult{
		Actions:      []string{},
		Positives:    []string{},
		Improvements: []string{},
	}
	summaries := make([]string, 0, len(results))
	for _, r := range results {
		summaries = append(summaries, r.Summary)
		merged.Actions = append(merged.Actions, r.Actions...)
		merged.Positives = append(merged.Positives, r.Positives...)
		merged.Improvements = append(merged.Improvements, r.Improvements...)
	}
	merged.Summary = strings.Join(summaries, "\n")
	return merged
}
