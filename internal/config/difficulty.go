package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name from the command line.
// An empty name selects normal, which leaves the loaded config untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", invalid("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyBreakoutPreset adjusts paddle width and ball speed.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width *= 1.4
		cfg.Ball.Speed *= 0.8
	case DifficultyHard:
		cfg.Paddle.Width *= 0.7
		cfg.Ball.Speed *= 1.3
	}
}

// ApplyPongPreset adjusts how closely the computer tracks the ball and how
// fast rallies can get.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Computer.Speed *= 0.6
		cfg.Ball.MaxSpeed = max(cfg.Ball.ServeSpeed, cfg.Ball.MaxSpeed*0.8)
	case DifficultyHard:
		cfg.Computer.Speed = min(1, cfg.Computer.Speed*1.5)
		cfg.Ball.MaxSpeed *= 1.3
	}
}

// String implements fmt.Stringer.
func (p DifficultyPreset) String() string {
	if p == "" {
		return string(DifficultyNormal)
	}
	return string(p)
}
