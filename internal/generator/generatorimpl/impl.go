package generatorimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/orgball2608/remixgram/internal/generator"
	"github.com/orgball2608/remixgram/pkg/config"
	"github.com/orgball2608/remixgram/pkg/logger"
	"github.com/orgball2608/remixgram/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Logger logger.Logger
	Config *config.Config
}

type GeneratorImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	Logger     logger.Logger
	Config     *config.Config
}

func New(opts Opts) *GeneratorImpl {
	return &GeneratorImpl{
		httpClient: &http.Client{Timeout: opts.Config.Generator.Timeout},
		baseURL:    strings.TrimRight(opts.Config.Generator.BaseURL, "/"),
		apiKey:     opts.Config.Generator.APIKey,
		Logger:     opts.Logger.WithComponent("Generator"),
		Config:     opts.Config,
	}
}

var _ generator.Client = (*GeneratorImpl)(nil)

type transformRequest struct {
	PrimaryImage   string `json:"primaryImage"`
	Instruction    string `json:"instruction"`
	SecondaryImage string `json:"secondaryImage,omitempty"`
}

type transformResponse struct {
	ImageURL string `json:"imageUrl"`
}

func (g *GeneratorImpl) Transform(ctx context.Context, primary, prompt, secondary string) (string, error) {
	req := transformRequest{
		PrimaryImage:   primary,
		Instruction:    buildInstruction(prompt, secondary != ""),
		SecondaryImage: secondary,
	}

	resp, err := retry.DoWithData(ctx, g.Logger, "generator.transform", func() (transformResponse, error) {
		var out transformResponse
		return out, g.post(ctx, "/v1/transform", req, &out)
	}, retry.DefaultConfig())
	if err != nil {
		return "", err
	}

	if resp.ImageURL == "" {
		return "", fmt.Errorf("%w: no image in response", generator.ErrGeneration)
	}
	return resp.ImageURL, nil
}

func (g *GeneratorImpl) Suggest(ctx context.Context, image string) []string {
	var out struct {
		Suggestions []string `json:"suggestions"`
	}
	err := g.post(ctx, "/v1/suggestions", map[string]string{"image": image}, &out)
	if err != nil || len(out.Suggestions) == 0 {
		if err != nil {
			g.Logger.Warn("Suggestion call failed, using defaults", "error", err)
		}
		return generator.DefaultSuggestions
	}
	if len(out.Suggestions) > 4 {
		return out.Suggestions[:4]
	}
	for len(out.Suggestions) < 4 {
		out.Suggestions = append(out.Suggestions, generator.DefaultSuggestions[len(out.Suggestions)])
	}
	return out.Suggestions
}

func (g *GeneratorImpl) Enhance(ctx context.Context, prompt string) string {
	var out struct {
		Prompt string `json:"prompt"`
	}
	err := g.post(ctx, "/v1/enhance", map[string]string{"prompt": prompt}, &out)
	if err != nil || out.Prompt == "" {
		if err != nil {
			g.Logger.Warn("Enhance call failed, keeping original prompt", "error", err)
		}
		return prompt
	}
	return out.Prompt
}

func (g *GeneratorImpl) Caption(ctx context.Context, image string) string {
	var out struct {
		Caption string `json:"caption"`
	}
	err := g.post(ctx, "/v1/caption", map[string]string{"image": image}, &out)
	if err != nil || out.Caption == "" {
		if err != nil {
			g.Logger.Warn("Caption call failed, using default", "error", err)
		}
		return generator.DefaultCaption
	}
	return out.Caption
}

// post sends one JSON request. Rate limits and client errors come back
// wrapped in backoff.Permanent so the retry helper stops immediately.
func (g *GeneratorImpl) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%w: encoding request: %v", generator.ErrGeneration, err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return backoff.Permanent(fmt.Errorf("%w: building request: %v", generator.ErrGeneration, err))
	}
	req.Header.Set("Content-Type", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", generator.ErrGeneration, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", generator.ErrGeneration, err)
	}

	if isRateLimited(resp.StatusCode, data) {
		return backoff.Permanent(generator.ErrRateLimited)
	}
	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: backend status %d", generator.ErrGeneration, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return backoff.Permanent(fmt.Errorf("%w: backend status %d", generator.ErrGeneration, resp.StatusCode))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return backoff.Permanent(fmt.Errorf("%w: decoding response: %v", generator.ErrGeneration, err))
	}
	return nil
}

func isRateLimited(status int, body []byte) bool {
	if status == http.StatusTooManyRequests {
		return true
	}
	s := string(body)
	return strings.Contains(s, "quota") || strings.Contains(s, "RESOURCE_EXHAUSTED")
}

func buildInstruction(prompt string, blend bool) string {
	instruction := fmt.Sprintf("Instruction: %s. ", prompt)
	if blend {
		instruction += "BLEND TASK: Combine the visual elements, style, or composition of BOTH provided images based on the user instruction. The first image is the base structure, the second image is the style/influence. Output a single cohesive artwork."
	} else {
		instruction += "Maintain the main composition and structure of the provided image, but creatively alter the style, texture, or elements as described. High artistic quality."
	}
	return instruction
}
