package env

import (
	"errors"
	"oddslab_backend/internal/config"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultCurvePoints = 99
	maxCurvePoints     = 1000
)

type curveConfig struct {
	DefaultPoints int `yaml:"default_points"`
	MaxPoints     int `yaml:"max_points"`
}

type curveYAML struct {
	Curve curveConfig `yaml:"curve"`
}

// NewCurveConfigFromYAML Загрузка настроек кривой для графика из config.yaml
func NewCurveConfigFromYAML(path string) (config.CurveConfig, error) {
	cfg := curveConfig{
		DefaultPoints: defaultCurvePoints,
		MaxPoints:     maxCurvePoints,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, err
	}

	var doc curveYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	if doc.Curve.DefaultPoints > 0 {
		cfg.DefaultPoints = doc.Curve.DefaultPoints
	}
	if doc.Curve.MaxPoints > 0 {
		cfg.MaxPoints = doc.Curve.MaxPoints
	}

	return &cfg, nil
}

func (cfg *curveConfig) DefaultPointCount() int {
	return cfg.DefaultPoints
}

func (cfg *curveConfig) MaxPointCount() int {
	return cfg.MaxPoints
}
