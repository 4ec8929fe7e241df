package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"mrc-extractor/internal/domain"
)

// ReadabilityClassifier applies the machine-readability rules in a fixed order and stops
// at the first rule that fails.
//
// The ASCII rule is deliberately coarse: it rejects any accented Latin letter and every
// non-Latin script along with OCR noise.
type ReadabilityClassifier struct {
	logger domain.Logger
}

func NewReadabilityClassifier(logger domain.Logger) *ReadabilityClassifier {
	return &ReadabilityClassifier{logger: logger}
}

// Classify reports whether text is machine-readable.
func (c *ReadabilityClassifier) Classify(text string) bool {
	return c.Evaluate(text).IsReadable
}

// Evaluate returns the verdict together with the first failing rule.
func (c *ReadabilityClassifier) Evaluate(text string) domain.ReadabilityVerdict {
	text = strings.TrimSpace(text)

	if n := utf8.RuneCountInString(text); n < domain.MinReadableLength {
		return c.reject(domain.RuleMinLength, "length", n)
	}

	if !strings.ContainsFunc(text, isAlphanumeric) {
		return c.reject(domain.RuleAlphanumeric)
	}

	if i := strings.IndexFunc(text, isNonASCII); i >= 0 {
		return c.reject(domain.RuleASCIIOnly, "offset", i)
	}

	if n := strings.Count(text, "\n"); n > domain.MaxReadableLineBreaks {
		return c.reject(domain.RuleLineBreaks, "line_breaks", n)
	}

	return domain.ReadabilityVerdict{IsReadable: true}
}

func (c *ReadabilityClassifier) reject(rule domain.Rule, fields ...interface{}) domain.ReadabilityVerdict {
	c.logger.Debug("Text is not machine-readable", append([]interface{}{"rule", string(rule)}, fields...)...)
	return domain.ReadabilityVerdict{IsReadable: false, FailedRule: rule}
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

func isNonASCII(r rune) bool {
	return r > unicode.MaxASCII
}
