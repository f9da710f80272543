package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Defaults applied when config.yml is absent or leaves fields unset.
const (
	DefaultPort           = 8080
	DefaultShareNowURL    = "http://localhost:5001/share-now/vehicles"
	DefaultFreeNowURL     = "http://localhost:5001/free-now/vehicles"
	DefaultTimeoutMS      = 10000
	DefaultItemsPerPage   = 20
	DefaultSortLocale     = "de"
	DefaultPublishDelayMS = 0
)

// LoadAppConfig loads and validates the application configuration from
// config.yml. A missing file is not an error; the service runs on defaults.
func LoadAppConfig() error {
	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		Config = AppConfig{}
		applyDefaults(&Config)
		return nil
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultPort
	}
	if cfg.Feeds.ShareNowURL == "" {
		cfg.Feeds.ShareNowURL = DefaultShareNowURL
	}
	if cfg.Feeds.FreeNowURL == "" {
		cfg.Feeds.FreeNowURL = DefaultFreeNowURL
	}
	if cfg.Feeds.TimeoutMS == 0 {
		cfg.Feeds.TimeoutMS = DefaultTimeoutMS
	}
	if cfg.Fleet.ItemsPerPage == 0 {
		cfg.Fleet.ItemsPerPage = DefaultItemsPerPage
	}
	if cfg.Fleet.SortLocale == "" {
		cfg.Fleet.SortLocale = DefaultSortLocale
	}
}
