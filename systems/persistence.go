package systems

import (
	"encoding/json"

	"github.com/automoto/runslide/components"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Preset string `json:"preset"`
	Debug  bool   `json:"debug"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return nil, err
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(settingsKey, data)
}

// SaveCurrentSettings saves the runtime toggles and the active preset.
func SaveCurrentSettings(s *components.SettingsData, preset string) {
	saved := &SavedSettings{
		Preset: preset,
		Debug:  s.Debug,
	}
	if err := SaveSettings(saved); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
		return
	}
	log.Info().Str("preset", preset).Bool("debug", s.Debug).Msg("settings saved")
}
