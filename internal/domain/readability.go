package domain

// Rule names one check of the machine-readability heuristic.
type Rule string

const (
	RuleMinLength    Rule = "min_length"
	RuleAlphanumeric Rule = "alphanumeric"
	RuleASCIIOnly    Rule = "ascii_only"
	RuleLineBreaks   Rule = "line_breaks"
)

const (
	// MinReadableLength is the minimum number of characters of trimmed text.
	MinReadableLength = 50
	// MaxReadableLineBreaks is the maximum number of newlines in trimmed text.
	MaxReadableLineBreaks = 55
)

// ReadabilityVerdict is the outcome of classifying a piece of text.
// FailedRule is empty when the text is readable.
type ReadabilityVerdict struct {
	IsReadable bool `json:"isReadable"`
	FailedRule Rule `json:"failedRule,omitempty"`
}
