package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ayusman/hasta/internal/app"
	"github.com/ayusman/hasta/internal/classify"
)

// SettingsHandler handles reads and writes of the dashboard settings.
type SettingsHandler struct {
	app *app.App
}

// NewSettingsHandler creates a new SettingsHandler for the given app.
func NewSettingsHandler(a *app.App) *SettingsHandler {
	return &SettingsHandler{app: a}
}

type settingsPayload struct {
	DetectionMethod       string  `json:"detection_method"`
	MotionThreshold       float64 `json:"motion_threshold"`
	LearningMode          bool    `json:"learning_mode"`
	BackgroundSubtraction bool    `json:"background_subtraction"`
}

// toPayload converts classifier settings to their wire form.
func toPayload(s classify.Settings) settingsPayload {
	return settingsPayload{
		DetectionMethod:       s.Method.String(),
		MotionThreshold:       s.MotionThreshold,
		LearningMode:          s.LearningMode,
		BackgroundSubtraction: s.BackgroundSubtraction,
	}
}

// toSettings validates the wire form and converts it to classifier settings.
func (p settingsPayload) toSettings() (classify.Settings, error) {
	method, err := classify.ParseMethod(p.DetectionMethod)
	if err != nil {
		return classify.Settings{}, err
	}

	if p.MotionThreshold < classify.MinMotionThreshold || p.MotionThreshold > classify.MaxMotionThreshold {
		return classify.Settings{}, fmt.Errorf("motion threshold %.0f out of range [%d,%d]",
			p.MotionThreshold, classify.MinMotionThreshold, classify.MaxMotionThreshold)
	}

	return classify.Settings{
		Method:                method,
		MotionThreshold:       p.MotionThreshold,
		LearningMode:          p.LearningMode,
		BackgroundSubtraction: p.BackgroundSubtraction,
	}, nil
}

// ServeHTTP routes settings requests.
func (h *SettingsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, toPayload(h.app.Settings()))
	case http.MethodPut:
		h.update(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// update handles PUT /api/settings.
func (h *SettingsHandler) update(w http.ResponseWriter, r *http.Request) {
	var payload settingsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	settings, err := payload.toSettings()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.app.UpdateSettings(settings); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}

	writeJSON(w, http.StatusOK, toPayload(settings))
}
