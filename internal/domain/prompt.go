package domain

import (
	"fmt"
	"strings"
)

// Prompt is the user-supplied text describing the desired image. It is forwarded
// to the provider verbatim; only blankness is checked.
type Prompt string

// Validate returns ErrInvalidPrompt for empty or whitespace-only prompts.
func (p Prompt) Validate() error {
	if strings.TrimSpace(string(p)) == "" {
		return fmt.Errorf("%w: prompt is empty", ErrInvalidPrompt)
	}
	return nil
}

func (p Prompt) String() string { return string(p) }
