package components

import (
	"github.com/automoto/runslide/config"
	"github.com/yohamta/donburi"
)

// SettingsData holds runtime toggles. Singleton.
type SettingsData struct {
	Debug   bool
	Presets *config.Presets
}

var Settings = donburi.NewComponentType[SettingsData]()
