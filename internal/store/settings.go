package store

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/ayusman/hasta/internal/classify"
)

// Settings keys persisted in the settings table.
const (
	keyDetectionMethod       = "detection_method"
	keyMotionThreshold       = "motion_threshold"
	keyLearningMode          = "learning_mode"
	keyBackgroundSubtraction = "background_subtraction"
)

// SettingsRepository provides load/save operations for dashboard settings.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Load reads the persisted settings, falling back to defaults for any key
// that has never been saved or fails to parse.
func (r *SettingsRepository) Load() (classify.Settings, error) {
	settings := classify.DefaultSettings()

	rows, err := r.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return settings, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return settings, err
		}

		switch key {
		case keyDetectionMethod:
			if m, err := classify.ParseMethod(value); err == nil {
				settings.Method = m
			}
		case keyMotionThreshold:
			if t, err := strconv.ParseFloat(value, 64); err == nil {
				settings.MotionThreshold = t
			}
		case keyLearningMode:
			settings.LearningMode = value == "true"
		case keyBackgroundSubtraction:
			settings.BackgroundSubtraction = value == "true"
		}
	}

	return settings, rows.Err()
}

// Save persists the settings, replacing any existing values.
func (r *SettingsRepository) Save(settings classify.Settings) error {
	values := map[string]string{
		keyDetectionMethod:       settings.Method.String(),
		keyMotionThreshold:       strconv.FormatFloat(settings.MotionThreshold, 'f', -1, 64),
		keyLearningMode:          strconv.FormatBool(settings.LearningMode),
		keyBackgroundSubtraction: strconv.FormatBool(settings.BackgroundSubtraction),
	}

	now := time.Now()
	for key, value := range values {
		_, err := r.db.Exec(
			`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
			key, value, now,
		)
		if err != nil {
			return err
		}
	}

	return nil
}
