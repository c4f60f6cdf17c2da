// Package tts proxies speech synthesis to an external endpoint. The
// voice is picked from the text itself: mostly-Chinese text gets the
// Chinese voice, everything else the English one.
package tts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"

	"github.com/phrazzld/lexi-api/internal/config"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
)

// Voice identifiers sent to the synthesis endpoint.
const (
	VoiceChinese = "zh-CN-XiaoxiaoNeural"
	VoiceEnglish = "en-GB-LibbyNeural"
)

// ErrUnavailable indicates every synthesis attempt failed.
var ErrUnavailable = errors.New("speech synthesis unavailable")

// Client fetches synthesized speech with bounded retries.
type Client struct {
	endpoint    string
	httpClient  *http.Client
	maxAttempts int
	backoff     time.Duration
	logger      *slog.Logger
}

// NewClient creates a TTS client from configuration.
// If logger is nil, a default logger will be used.
func NewClient(cfg config.TTSConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	backoff := time.Duration(cfg.RetryBackoffSeconds) * time.Second
	if cfg.RetryBackoffSeconds == 0 {
		backoff = 2 * time.Second
	}

	return &Client{
		endpoint:    cfg.Endpoint,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		maxAttempts: maxAttempts,
		backoff:     backoff,
		logger:      logger.With(slog.String("component", "tts_client")),
	}
}

// Enabled reports whether an endpoint is configured.
func (c *Client) Enabled() bool {
	return c.endpoint != ""
}

// Synthesize fetches MP3 audio for the given text, retrying failed
// attempts with a fixed backoff. The context cancels both in-flight
// requests and the backoff wait.
func (c *Client) Synthesize(ctx context.Context, text string) ([]byte, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if !c.Enabled() {
		return nil, ErrUnavailable
	}

	// Phrases arrive with markdown bold markers around the target word;
	// the synthesizer would read them aloud.
	text = strings.ReplaceAll(text, "**", "")

	voice := VoiceForText(text)

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(c.backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		audio, err := c.fetch(ctx, text, voice)
		if err == nil {
			return audio, nil
		}

		lastErr = err
		log.Warn("speech synthesis attempt failed",
			slog.Int("attempt", attempt),
			slog.Int("max_attempts", c.maxAttempts),
			slog.String("error", err.Error()))
	}

	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *Client) fetch(ctx context.Context, text, voice string) ([]byte, error) {
	query := url.Values{}
	query.Set("text", text)
	query.Set("voice", voice)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis endpoint returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesis response: %w", err)
	}

	return audio, nil
}

// VoiceForText picks the voice by script: when more than half of the
// letter runes are Han characters the Chinese voice is used.
func VoiceForText(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return VoiceEnglish
	}

	han := 0
	for _, r := range runes {
		if unicode.Is(unicode.Han, r) {
			han++
		}
	}

	if float64(han)/float64(len(runes)) > 0.5 {
		return VoiceChinese
	}
	return VoiceEnglish
}
