package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// RoutePoint - контрольная точка маршрута в файле
type RoutePoint struct {
	Latitude  float64 `yaml:"lat" validate:"latitude"`
	Longitude float64 `yaml:"lon" validate:"longitude"`
}

// BoatEntry - лодка из реестра участников
type BoatEntry struct {
	ID   string `yaml:"id" validate:"required"`
	Name string `yaml:"name"`
}

// RouteFile - статическое описание маршрута парада и реестра лодок
type RouteFile struct {
	Name            string       `yaml:"name" validate:"required"`
	ToleranceMeters float64      `yaml:"tolerance_meters" validate:"required,gt=0"`
	Points          []RoutePoint `yaml:"points" validate:"required,min=2,dive"`
	Boats           []BoatEntry  `yaml:"boats" validate:"dive"`
}

// LoadRouteFile читает и валидирует YAML-файл маршрута
func LoadRouteFile(path string) (*RouteFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read route file %s: %w", path, err)
	}
	return ParseRouteFile(data)
}

// ParseRouteFile разбирает содержимое файла маршрута
func ParseRouteFile(data []byte) (*RouteFile, error) {
	var rf RouteFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("failed to parse route file: %w", err)
	}

	if err := validator.New().Struct(rf); err != nil {
		return nil, fmt.Errorf("route file validation failed: %w", err)
	}

	seen := make(map[string]struct{}, len(rf.Boats))
	for _, b := range rf.Boats {
		if _, dup := seen[b.ID]; dup {
			return nil, fmt.Errorf("route file validation failed: duplicate boat id %q", b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return &rf, nil
}
