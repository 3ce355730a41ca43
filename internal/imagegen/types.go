package imagegen

import "context"

// Fixed generation settings sent with every request, whatever the prompt says.
const (
	DefaultBaseURL           = "https://api.studio.nebius.com/v1/"
	DefaultModel             = "black-forest-labs/flux-dev"
	DefaultResponseExtension = "webp"
	DefaultWidth             = 1024
	DefaultHeight            = 1024
	DefaultInferenceSteps    = 28
	// RandomSeed asks the provider to pick a fresh seed per request.
	RandomSeed = -1
)

// Params describes the provider-side generation configuration.
type Params struct {
	Model             string
	ResponseExtension string
	Width             int
	Height            int
	InferenceSteps    int
	NegativePrompt    string
	Seed              int
}

// DefaultParams returns the settings used for every generation.
func DefaultParams() Params {
	return Params{
		Model:             DefaultModel,
		ResponseExtension: DefaultResponseExtension,
		Width:             DefaultWidth,
		Height:            DefaultHeight,
		InferenceSteps:    DefaultInferenceSteps,
		NegativePrompt:    "",
		Seed:              RandomSeed,
	}
}

// Generator turns a prompt into a hosted image URL with a single provider call.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
