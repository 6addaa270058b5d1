package cli

import (
	"fmt"
	"os"

	"github.com/grovetools/nav/errors"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
	}
}

// Handle provides user-friendly error messages based on error type
func (h *ErrorHandler) Handle(err error) error {
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(os.Stderr, "❌ Configuration not found. Create a nav.yml in your project or ~/.config/nav/.\n")
		return err

	case errors.ErrCodeDatasetNotFound:
		if navErr, ok := err.(*errors.NavError); ok {
			fmt.Fprintf(os.Stderr, "❌ Dataset file '%s' not found\n", navErr.Details["path"])
			fmt.Fprintf(os.Stderr, "Pass a dataset path or set 'dataset:' in nav.yml.\n")
		}
		return err

	case errors.ErrCodeDatasetInvalid:
		if navErr, ok := err.(*errors.NavError); ok {
			fmt.Fprintf(os.Stderr, "❌ Dataset is invalid: %s\n", navErr.Message)
			fmt.Fprintf(os.Stderr, "Run 'nav schema' to see the expected document shape.\n")
		}
		return err

	case errors.ErrCodeInvalidIndex:
		if navErr, ok := err.(*errors.NavError); ok {
			fmt.Fprintf(os.Stderr, "❌ Group %v is out of range (dataset has %v groups)\n",
				navErr.Details["group"], navErr.Details["groupCount"])
		}
		return err

	default:
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)

		if h.Verbose {
			if navErr, ok := err.(*errors.NavError); ok {
				fmt.Fprintf(os.Stderr, "\nError details:\n%s\n", navErr.ToJSON())
			}
		}
		return err
	}
}
