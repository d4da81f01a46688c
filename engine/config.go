package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrOutOfBounds   = errors.New("coordinate out of bounds")
	ErrGameWon       = errors.New("game already won")
)

const (
	DefaultRows                = 5
	DefaultCols                = 5
	DefaultChanceLightStartsOn = 0.5
)

// Config holds the construction-time parameters of a board. It is never
// modified once the engine is built.
type Config struct {
	Rows                int
	Cols                int
	ChanceLightStartsOn float64
}

func DefaultConfig() Config {
	return Config{
		Rows:                DefaultRows,
		Cols:                DefaultCols,
		ChanceLightStartsOn: DefaultChanceLightStartsOn,
	}
}

func (c Config) Validate() error {
	if c.Rows <= 0 {
		return fmt.Errorf("%w: rows must be positive, got %d", ErrInvalidConfig, c.Rows)
	}
	if c.Cols <= 0 {
		return fmt.Errorf("%w: cols must be positive, got %d", ErrInvalidConfig, c.Cols)
	}
	if c.ChanceLightStartsOn < 0 || c.ChanceLightStartsOn > 1 {
		return fmt.Errorf("%w: chance must be within [0, 1], got %v", ErrInvalidConfig, c.ChanceLightStartsOn)
	}
	return nil
}
