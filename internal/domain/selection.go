package domain

// ValidationError names the form field that failed and the message id the web
// layer turns into user-facing text.
type ValidationError struct {
	Field string `json:"field"`
	ID    string `json:"id"`
}

// SelectionResult is what every form validator returns. Success is true
// exactly when Errors is empty.
type SelectionResult struct {
	Success bool              `json:"success"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

// NewSelectionResult derives Success from errs so the two can never disagree.
func NewSelectionResult(errs []ValidationError) SelectionResult {
	if len(errs) == 0 {
		return SelectionResult{Success: true}
	}
	return SelectionResult{Success: false, Errors: errs}
}

func Selected() SelectionResult {
	return SelectionResult{Success: true}
}

func Rejected(field, id string) SelectionResult {
	return NewSelectionResult([]ValidationError{{Field: field, ID: id}})
}
