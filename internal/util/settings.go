package util

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Settings struct {
	Db       DbSettings      `yaml:"db"`
	Universe []UniverseAsset `yaml:"universe"`
}

type DbSettings struct {
	Host      string `yaml:"host"`
	User      string `yaml:"user"`
	Port      string `yaml:"port"`
	Password  string `yaml:"password"`
	Database  string `yaml:"database"`
	EnableSsl bool   `yaml:"enableSsl"`
}

// UniverseAsset is one entry of the configured asset universe. AssetClass
// and Currency ride along with every ingested observation.
type UniverseAsset struct {
	Symbol     string `yaml:"symbol"`
	AssetClass string `yaml:"assetClass"`
	Currency   string `yaml:"currency"`
}

func (t DbSettings) ToConnectionStr() string {
	x := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s",
		t.Host, t.Port, t.User, t.Password, t.Database)
	if !t.EnableSsl {
		x += " sslmode=disable"
	}
	return x
}

func LoadSettings() (*Settings, error) {
	settingsFile := "settings.yaml"
	if os.Getenv("EDUFINANCE_ENV") == "dev" {
		settingsFile = "settings-dev.yaml"
	} else if os.Getenv("EDUFINANCE_ENV") == "test" {
		settingsFile = "settings-test.yaml"
	}
	if override := os.Getenv("EDUFINANCE_SETTINGS"); override != "" {
		settingsFile = override
	}
	f, err := os.ReadFile(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", settingsFile, err)
	}

	settings := Settings{}
	err = yaml.Unmarshal(f, &settings)
	if err != nil {
		return nil, err
	}

	return &settings, nil
}
