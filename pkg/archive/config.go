package archive

import (
	"log"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config carries the station settings the CLI and UI share.
type Config interface {
	BasePath() string
	Currency() string
	Station() string
}

// LoadConfig reads .weighbridge.yaml (working directory or
// WEIGHBRIDGE_CONFIG_PATH) with WEIGHBRIDGE_* environment overrides.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.weighbridge.db")
	viper.SetDefault("currency", "UZS")
	viper.SetDefault("station", "Desert Weigh Station")
	viper.SetConfigName(".weighbridge") // .yaml is implicit
	viper.SetEnvPrefix("WEIGHBRIDGE")
	viper.AutomaticEnv()

	if override := os.Getenv("WEIGHBRIDGE_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Fatalf("error reading config file: %v", err)
			return nil, err
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, err
	}

	return &fileConfig{
		Path:         path,
		CurrencyCode: viper.GetString("currency"),
		StationName:  viper.GetString("station"),
	}, nil
}

type fileConfig struct {
	Path         string `json:"path"`
	CurrencyCode string `json:"currency"`
	StationName  string `json:"station"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

func (f *fileConfig) Currency() string {
	return f.CurrencyCode
}

func (f *fileConfig) Station() string {
	return f.StationName
}
