package handle

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"car-damage-analyzer/api/internal/report"
	"car-damage-analyzer/api/internal/util"
)

const (
	maxUploadSize = 10 << 20 // 10 MB
	engineTimeout = 180 * time.Second
)

// failureNotice stands in for the report text when the engine call fails, so
// the caller still gets a well-formed (mostly empty) report.
const failureNotice = "Analysis failed. Please try again."

// Analysis is the response envelope for POST /analyze.
type Analysis struct {
	Timestamp string `json:"timestamp"`
	Engine    string `json:"engine"`
	report.Report
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "POST only")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "upload too large or malformed")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no image file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" || !util.AllowedImageName(header.Filename) {
		writeError(w, http.StatusBadRequest, "invalid file format")
		return
	}

	img, err := io.ReadAll(file)
	if err != nil || len(img) == 0 {
		writeError(w, http.StatusBadRequest, "unreadable image file")
		return
	}

	engine, err := h.engs.GetEngine(r.FormValue("api"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	language := "english"
	if r.FormValue("language") == "persian" {
		language = "persian"
	}

	ctx, cancel := context.WithTimeout(r.Context(), engineTimeout)
	defer cancel()

	text, err := engine.Analyze(ctx, img, language)
	if err != nil {
		log.Error().Err(err).Str("engine", engine.Name()).Msg("analysis failed")
		text = failureNotice
	}

	writeJSON(w, http.StatusOK, Analysis{
		Timestamp: time.Now().Format("2006-01-02 15:04"),
		Engine:    displayName(engine.Name()),
		Report:    report.Parse(text),
	})
}

func displayName(engine string) string {
	if engine == "gemini" {
		return "Google Gemini"
	}
	return "OpenAI"
}
