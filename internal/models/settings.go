// ABOUTME: UserSettings model, one row per settings key.
// ABOUTME: Holds display preferences: weight unit and theme.
package models

// WeightUnit is the display unit for logged weights.
type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"
)

// Theme selects the display theme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultSettingsKey is the key for the singleton settings row.
const DefaultSettingsKey = "default"

// UserSettings holds per-key user preferences. The app uses a single row
// under DefaultSettingsKey.
type UserSettings struct {
	Key        string     `json:"key" yaml:"key"`
	WeightUnit WeightUnit `json:"weight_unit" yaml:"weight_unit"`
	Theme      Theme      `json:"theme" yaml:"theme"`
}

// DefaultSettings returns the settings written on first save.
func DefaultSettings() *UserSettings {
	return &UserSettings{
		Key:        DefaultSettingsKey,
		WeightUnit: UnitLbs,
		Theme:      ThemeLight,
	}
}
