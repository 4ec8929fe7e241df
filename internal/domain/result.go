package domain

// ExtractionResult is either extracted content or a failure reason, never both.
type ExtractionResult struct {
	Content *string `json:"content,omitempty"`
	Error   *string `json:"error,omitempty"`
}

// Content builds a successful result.
func Content(text string) ExtractionResult {
	return ExtractionResult{Content: &text}
}

// Failure builds a failed result.
func Failure(reason string) ExtractionResult {
	return ExtractionResult{Error: &reason}
}

// ResultOf converts a dispatcher return pair into a result.
func ResultOf(text string, err error) ExtractionResult {
	if err != nil {
		return Failure(err.Error())
	}
	return Content(text)
}

// Failed reports whether the result holds a failure.
func (r ExtractionResult) Failed() bool {
	return r.Error != nil
}
