package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Dataset Dataset `json:"dataset" yaml:"dataset" mapstructure:"dataset"`
	Actors  Actors  `json:"actors" yaml:"actors" mapstructure:"actors"`
}

// Dataset configures where the IMDb extracts come from and where they are cached
type Dataset struct {
	Dir     string        `json:"dir" yaml:"dir" mapstructure:"dir" validate:"required"`
	BaseURL string        `json:"baseURL" yaml:"baseURL" mapstructure:"baseURL" validate:"required,url"`
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`
}

// Actors names the two people being compared
type Actors struct {
	A string `json:"a" yaml:"a" mapstructure:"a" validate:"required"`
	B string `json:"b" yaml:"b" mapstructure:"b" validate:"required"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	err := cu.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	err = validator.New(validator.WithRequiredStructEnabled()).Struct(c)
	return c, err
}
