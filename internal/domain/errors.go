package domain

import "errors"

var (
	// ErrInvalidPrompt marks a missing, empty or whitespace-only prompt.
	ErrInvalidPrompt = errors.New("invalid prompt")
	// ErrProviderFailure marks any failure of the outbound generation call.
	ErrProviderFailure = errors.New("provider failure")
)

// Messages returned to callers. Provider details never leak into them.
const (
	MsgPromptRequired   = "Prompt is required"
	MsgGenerationFailed = "Failed to generate image"
)
