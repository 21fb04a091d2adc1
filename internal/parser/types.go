package parser

// Confidence is the coarse band assigned to a non-null extraction result.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Candidate origin tiers, in priority order.
const (
	SourceRepaired = "repaired"
	SourceExplicit = "explicit"
	SourceGeneric  = "generic"
)

// Candidate is a normalized (letters+digits only) token that might be a BL
// number, together with the tier that produced it.
type Candidate struct {
	Token  string
	Source string
}

// ScoredCandidate carries the score and the ordered reason tags explaining
// every signal that was applied to a candidate.
type ScoredCandidate struct {
	Token   string   `json:"token"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Result is the sole externally observable output of the BL pipeline. It is
// always well-formed for any input, including the empty string.
type Result struct {
	BLNumber   *string           `json:"bl_number"`
	Confidence Confidence        `json:"confidence"`
	Reason     string            `json:"reason"`
	Candidates []ScoredCandidate `json:"candidates"`
}

// Found reports whether the pipeline selected a BL number.
func (r Result) Found() bool {
	return r.BLNumber != nil
}

func rejected(reason string) Result {
	return Result{
		BLNumber:   nil,
		Confidence: ConfidenceLow,
		Reason:     reason,
		Candidates: []ScoredCandidate{},
	}
}
