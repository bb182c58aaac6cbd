package domain

// Config mirrors ~/.termfolio/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Server              ServerSettings    `yaml:"server"`
	Storage             StorageSettings   `yaml:"storage"`
	Assistant           AssistantSettings `yaml:"assistant"`
	Models              []ModelDefinition `yaml:"models"`
	Mail                MailSettings      `yaml:"mail"`
	Terminal            TerminalSettings  `yaml:"terminal"`
	Logging             LoggingSettings   `yaml:"logging"`
}

// ServerSettings configures the HTTP API.
type ServerSettings struct {
	Addr                 string `yaml:"addr"`
	CORSOrigin           string `yaml:"cors_origin"`
	AskRatePerMinute     int    `yaml:"ask_rate_per_minute"`
	ContactRatePerMinute int    `yaml:"contact_rate_per_minute"`
	ReadTimeoutSeconds   int    `yaml:"read_timeout"`
}

// StorageSettings locates the sqlite database.
type StorageSettings struct {
	Path        string `yaml:"path"`
	SeedOnStart bool   `yaml:"seed_on_start"`
}

// AssistantSettings selects how /ask questions are answered.
// An empty DefaultModel means the rule responder answers everything.
type AssistantSettings struct {
	DefaultModel   string `yaml:"default_model"`
	TimeoutSeconds int    `yaml:"timeout"`
}

// MailSettings controls the contact relay.
type MailSettings struct {
	Provider  string `yaml:"provider"`
	Endpoint  string `yaml:"endpoint"`
	APIKeyEnv string `yaml:"api_key_env"`
	FromEnv   string `yaml:"from_env"`
	To        string `yaml:"to"`
}

// TerminalSettings configures the interactive client.
type TerminalSettings struct {
	APIURL            string `yaml:"api_url"`
	SessionLabel      string `yaml:"session_label"`
	TypewriterDelayMS int    `yaml:"typewriter_delay_ms"`
	Welcome           string `yaml:"welcome"`
}

// LoggingSettings sets the log level.
type LoggingSettings struct {
	Level string `yaml:"level"`
}
