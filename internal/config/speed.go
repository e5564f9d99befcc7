package config

import "fmt"

// SpeedPreset represents a named movement speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// UpdatePeriodForPreset returns the frames per movement tick for a preset.
func UpdatePeriodForPreset(preset SpeedPreset) (int, bool) {
	switch preset {
	case SpeedSlow:
		return 12, true
	case SpeedNormal:
		return 8, true
	case SpeedFast:
		return 4, true
	default:
		return 0, false
	}
}

// ApplySpeedPreset modifies the config based on a speed preset.
// An empty preset leaves the config unchanged.
func ApplySpeedPreset(cfg *Snake, preset SpeedPreset) error {
	if preset == "" {
		return nil
	}
	period, ok := UpdatePeriodForPreset(preset)
	if !ok {
		return fmt.Errorf("config: unknown speed preset %q (want slow, normal or fast)", preset)
	}
	cfg.Timing.UpdatePeriod = period
	return nil
}
