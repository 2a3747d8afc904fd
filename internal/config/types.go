package config

// StoreBackend identifies where form submissions are persisted.
type StoreBackend string

const (
	BackendSQLite   StoreBackend = "sqlite"
	BackendDynamoDB StoreBackend = "dynamodb"
)

// Config is the top-level studio configuration, corresponding to studio.yml.
type Config struct {
	SiteName     string         `yaml:"site_name" koanf:"site_name"`
	DataDir      string         `yaml:"data_dir" koanf:"data_dir"`
	CatalogFile  string         `yaml:"catalog_file" koanf:"catalog_file"`
	WatchCatalog bool           `yaml:"watch_catalog" koanf:"watch_catalog"`
	LogLevel     string         `yaml:"log_level" koanf:"log_level"`
	LogPretty    bool           `yaml:"log_pretty" koanf:"log_pretty"`
	Server       ServerConfig   `yaml:"server" koanf:"server"`
	Store        StoreConfig    `yaml:"store" koanf:"store"`
	Mail         MailConfig     `yaml:"mail" koanf:"mail"`
	Carousel     CarouselConfig `yaml:"carousel" koanf:"carousel"`
	Viewport     ViewportConfig `yaml:"viewport" koanf:"viewport"`
	Theme        ThemeConfig    `yaml:"theme" koanf:"theme"`
	Admin        AdminConfig    `yaml:"admin" koanf:"admin"`
	Session      SessionConfig  `yaml:"session" koanf:"session"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port           int      `yaml:"port" koanf:"port"`
	AllowAll       bool     `yaml:"allow_all" koanf:"allow_all"` // allow all CORS origins (dev mode)
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// StoreConfig selects and configures the submission store.
type StoreConfig struct {
	Backend     StoreBackend `yaml:"backend" koanf:"backend"`
	DynamoTable string       `yaml:"dynamo_table" koanf:"dynamo_table"`
	Region      string       `yaml:"region" koanf:"region"`
	Endpoint    string       `yaml:"endpoint" koanf:"endpoint"` // e.g. DynamoDB Local
}

// MailConfig holds SMTP settings for submission alerts. An empty Host
// disables mail.
type MailConfig struct {
	Host      string `yaml:"host" koanf:"host"`
	Port      int    `yaml:"port" koanf:"port"`
	Username  string `yaml:"username" koanf:"username"`
	Password  string `yaml:"password" koanf:"password"`
	FromName  string `yaml:"from_name" koanf:"from_name"`
	FromEmail string `yaml:"from_email" koanf:"from_email"`
	NotifyTo  string `yaml:"notify_to" koanf:"notify_to"`
}

// CarouselConfig holds the pacing constants for every carousel on the site.
type CarouselConfig struct {
	HeroIntervalMS        int `yaml:"hero_interval_ms" koanf:"hero_interval_ms"`
	TestimonialIntervalMS int `yaml:"testimonial_interval_ms" koanf:"testimonial_interval_ms"`
	TransitionLockMS      int `yaml:"transition_lock_ms" koanf:"transition_lock_ms"`
}

// ViewportConfig holds the responsive breakpoint.
type ViewportConfig struct {
	MobileBreakpoint int `yaml:"mobile_breakpoint" koanf:"mobile_breakpoint"`
}

// ThemeConfig holds the default theme for visitors without a stored preference.
type ThemeConfig struct {
	DefaultDark bool `yaml:"default_dark" koanf:"default_dark"`
}

// AdminConfig configures the admin console gate. An empty passcode leaves
// the console open.
type AdminConfig struct {
	Passcode string `yaml:"passcode" koanf:"passcode"`
}

// SessionConfig controls view-session lifetime.
type SessionConfig struct {
	IdleTimeoutMinutes int `yaml:"idle_timeout_minutes" koanf:"idle_timeout_minutes"`
}
