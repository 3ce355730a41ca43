package imagegen

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"visionai/internal/domain"
)

type NebiusOptions struct {
	BaseURL    string
	APIKey     string
	Model      string
	HTTPClient *http.Client
}

// NebiusClient talks to the OpenAI-compatible image endpoint of Nebius AI Studio.
type NebiusClient struct {
	client openai.Client
	params Params
}

func NewNebiusClient(opts NebiusOptions) (*NebiusClient, error) {
	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		return nil, errors.New("nebius: API key is missing")
	}
	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	params := DefaultParams()
	if model := strings.TrimSpace(opts.Model); model != "" {
		params.Model = model
	}

	reqOpts := []option.RequestOption{
		option.WithBaseURL(base),
		option.WithAPIKey(key),
		// one request per generation, failures go straight back to the caller
		option.WithMaxRetries(0),
	}
	if opts.HTTPClient != nil {
		reqOpts = append(reqOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	return &NebiusClient{
		client: openai.NewClient(reqOpts...),
		params: params,
	}, nil
}

func (c *NebiusClient) Generate(ctx context.Context, prompt string) (string, error) {
	if c == nil {
		return "", fmt.Errorf("%w: nebius client not configured", domain.ErrProviderFailure)
	}
	resp, err := c.client.Images.Generate(ctx, openai.ImageGenerateParams{
		Prompt:         prompt,
		Model:          openai.ImageModel(c.params.Model),
		ResponseFormat: openai.ImageGenerateParamsResponseFormatURL,
	}, c.extraBody()...)
	if err != nil {
		return "", fmt.Errorf("%w: nebius images.generate: %w", domain.ErrProviderFailure, err)
	}
	if resp == nil || len(resp.Data) == 0 {
		return "", fmt.Errorf("%w: nebius: empty response", domain.ErrProviderFailure)
	}
	url := strings.TrimSpace(resp.Data[0].URL)
	if url == "" {
		return "", fmt.Errorf("%w: nebius: missing image url", domain.ErrProviderFailure)
	}
	return resp.Data[0].URL, nil
}

// extraBody carries the provider-specific fields the OpenAI schema has no slot for.
func (c *NebiusClient) extraBody() []option.RequestOption {
	return []option.RequestOption{
		option.WithJSONSet("response_extension", c.params.ResponseExtension),
		option.WithJSONSet("width", c.params.Width),
		option.WithJSONSet("height", c.params.Height),
		option.WithJSONSet("num_inference_steps", c.params.InferenceSteps),
		option.WithJSONSet("negative_prompt", c.params.NegativePrompt),
		option.WithJSONSet("seed", c.params.Seed),
	}
}
