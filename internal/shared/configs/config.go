package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Pipeline    PipelineConfig    `mapstructure:"pipeline" validate:"required"`
	Source      SourceConfig      `mapstructure:"source"`
	Reports     ReportsConfig     `mapstructure:"reports" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// PipelineConfig holds the event-time windowing and ranking configuration.
//
// WindowSlideSeconds must equal WindowLengthSeconds: the windowing primitive is
// generically sliding, but only the tumbling configuration is supported.
type PipelineConfig struct {
	WindowLengthSeconds    int    `mapstructure:"window_length_seconds" validate:"required,min=1"`
	WindowSlideSeconds     int    `mapstructure:"window_slide_seconds" validate:"required,eqfield=WindowLengthSeconds"`
	AllowedLatenessSeconds int    `mapstructure:"allowed_lateness_seconds" validate:"min=0"`
	TopSize                int    `mapstructure:"top_size" validate:"required,min=1"`
	Partitions             int    `mapstructure:"partitions" validate:"required,min=1"`
	QueueBuffer            int    `mapstructure:"queue_buffer" validate:"required,min=1"`
	ReportTimeZone         string `mapstructure:"report_time_zone" validate:"required"`
	DrainOnShutdown        bool   `mapstructure:"drain_on_shutdown"`
}

// SourceConfig holds optional input-source configuration. The HTTP ingest
// endpoint is always available; a file source is started when enabled.
type SourceConfig struct {
	File FileSourceConfig `mapstructure:"file"`
}

// FileSourceConfig holds access-log file source configuration.
type FileSourceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Path     string `mapstructure:"path" validate:"required_if=Enabled true"`
	Follow   bool   `mapstructure:"follow"`
	SourceID string `mapstructure:"source_id"`
}

// ReportsConfig holds report retention configuration.
type ReportsConfig struct {
	CacheTTLMinutes int `mapstructure:"cache_ttl_minutes" validate:"required,min=1"`
}
