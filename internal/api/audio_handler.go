package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/lexi-api/internal/api/shared"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/platform/tts"
)

// AudioHandler proxies speech synthesis for word pronunciation.
type AudioHandler struct {
	tts    *tts.Client
	logger *slog.Logger
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(ttsClient *tts.Client, logger *slog.Logger) *AudioHandler {
	if ttsClient == nil {
		panic("tts client cannot be nil for AudioHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for AudioHandler")
	}

	return &AudioHandler{
		tts:    ttsClient,
		logger: logger.With(slog.String("component", "audio_handler")),
	}
}

// GetAudio handles GET /api/audio requests.
func (h *AudioHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	text := r.URL.Query().Get("text")
	if text == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Text is required")
		return
	}

	audio, err := h.tts.Synthesize(r.Context(), text)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, statusCode, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("serving synthesized audio", slog.Int("bytes", len(audio)))

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(audio); err != nil {
		log.Error("failed to write audio response", slog.String("error", err.Error()))
	}
}
