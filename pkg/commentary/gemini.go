package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Generator produces a dealer comment for a situation.
// A generator must never propagate a failure: any internal error maps to a
// fallback string so the game is never gated on commentary.
type Generator interface {
	// Enabled returns false when the generator is unconfigured and calls
	// should be skipped entirely
	Enabled() bool

	// Comment returns a short dealer remark for the situation
	Comment(ctx context.Context, situation Situation, c Context) string
}

// DefaultModel is the language model used when none is configured
const DefaultModel = "gemini-2.5-flash"

const defaultBaseURL = "https://generativelanguage.googleapis.com"

// fallback strings for generator failures
const (
	fallbackQuiet        = "The dealer is unusually quiet."
	fallbackSafetyBlock  = "Dealer's comment was blocked (safety)."
	fallbackBadKey       = "Dealer's commentary unavailable (API Key issue)."
	fallbackDisconnected = "The dealer is contemplating the meaning of life... or just lost connection."
)

// GeminiClient generates dealer comments via the Gemini REST API
type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  logrus.FieldLogger
}

// NewGeminiClient returns a new Gemini-backed comment generator.
// An empty apiKey yields a disabled client; an empty model selects
// DefaultModel.
func NewGeminiClient(logger logrus.FieldLogger, apiKey, model string) *GeminiClient {
	if model == "" {
		model = DefaultModel
	}

	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: time.Second * 15},
		logger:  logger,
	}
}

// Enabled returns true if an API key is configured
func (g *GeminiClient) Enabled() bool {
	return g.apiKey != ""
}

type generateContentRequest struct {
	Contents []requestContent `json:"contents"`
	Config   generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopP            float64 `json:"topP"`
	TopK            int     `json:"topK"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
		FinishReason  string `json:"finishReason"`
		SafetyRatings []struct {
			Blocked bool `json:"blocked"`
		} `json:"safetyRatings"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Comment asks the model for a remark about the situation.
// Every failure mode degrades to a fallback string.
func (g *GeminiClient) Comment(ctx context.Context, situation Situation, c Context) string {
	if !g.Enabled() {
		return ""
	}

	body, err := json.Marshal(generateContentRequest{
		Contents: []requestContent{
			{Parts: []requestPart{{Text: promptFor(situation, c)}}},
		},
		Config: generationConfig{
			Temperature:     0.75,
			TopP:            0.9,
			TopK:            40,
			MaxOutputTokens: 50,
		},
	})
	if err != nil {
		// request types marshal unconditionally
		panic(err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", g.baseURL, g.model, g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.WithError(err).Warn("could not build comment request")
		return fallbackDisconnected
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithError(err).WithField("situation", situation).Warn("comment request failed")
		return fallbackDisconnected
	}
	defer resp.Body.Close()

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		g.logger.WithError(err).Warn("could not decode comment response")
		return fallbackDisconnected
	}

	if resp.StatusCode != http.StatusOK {
		msg := ""
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}

		g.logger.WithFields(logrus.Fields{
			"statusCode": resp.StatusCode,
			"message":    msg,
		}).Warn("comment request rejected")

		if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusForbidden {
			return fallbackBadKey
		}

		return fallbackDisconnected
	}

	return commentFromResponse(parsed)
}

// commentFromResponse extracts the comment text, mapping blocked or empty
// responses to the matching fallback
func commentFromResponse(parsed generateContentResponse) string {
	if len(parsed.Candidates) == 0 {
		if fb := parsed.PromptFeedback; fb != nil && fb.BlockReason != "" {
			return fmt.Sprintf("Dealer's comment was blocked (prompt: %s).", fb.BlockReason)
		}

		return fallbackQuiet
	}

	candidate := parsed.Candidates[0]
	for _, rating := range candidate.SafetyRatings {
		if rating.Blocked {
			return fallbackSafetyBlock
		}
	}

	var text string
	for _, part := range candidate.Content.Parts {
		text += part.Text
	}

	text = strings.TrimSpace(text)
	if text == "" {
		switch candidate.FinishReason {
		case "", "STOP", "UNSPECIFIED", "FINISH_REASON_UNSPECIFIED":
			return fallbackQuiet
		default:
			return fmt.Sprintf("Dealer's thought process stopped: %s.", candidate.FinishReason)
		}
	}

	if strings.HasPrefix(text, `"`) && strings.HasSuffix(text, `"`) && len(text) > 1 {
		text = text[1 : len(text)-1]
	}

	return text
}
