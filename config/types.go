package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// FeedsConfig contains upstream vehicle feed configuration
type FeedsConfig struct {
	ShareNowURL    string `yaml:"shareNowURL" validate:"omitempty,url"`
	FreeNowURL     string `yaml:"freeNowURL" validate:"omitempty,url"`
	TimeoutMS      int    `yaml:"timeoutMS" validate:"gte=0"`
	PublishDelayMS int    `yaml:"publishDelayMS" validate:"gte=0"`
}

// FleetConfig contains fleet view configuration
type FleetConfig struct {
	ItemsPerPage int    `yaml:"itemsPerPage" validate:"gte=0"`
	SortLocale   string `yaml:"sortLocale"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server ServerConfig `yaml:"server" validate:"required"`
	Feeds  FeedsConfig  `yaml:"feeds"`
	Fleet  FleetConfig  `yaml:"fleet"`
}
