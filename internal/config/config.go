package config

import "time"

// Config is the root configuration shared by the phoneform binaries.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Form       FormConfig       `yaml:"form"`
	Submission SubmissionConfig `yaml:"submission"`
	Drafts     DraftsConfig     `yaml:"drafts"`
	Intake     IntakeConfig     `yaml:"intake"`
	Log        LogConfig        `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `yaml:"addr"             env:"SERVER_ADDR"             env-default:":8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// FormConfig selects the form definition and the phone widget defaults.
type FormConfig struct {
	// Kind is an embedded form key, ignored when Path is set.
	Kind string `yaml:"kind" env:"FORM_KIND" env-default:"membership"`
	// Path points at a JSON/YAML definition on disk.
	Path           string `yaml:"path"            env:"FORM_PATH"`
	DefaultCountry string `yaml:"default_country" env:"FORM_DEFAULT_COUNTRY" env-default:"ES"`
	Placeholder    string `yaml:"placeholder"     env:"FORM_PLACEHOLDER"     env-default:"Número de teléfono"`
}

// Submission backends.
const (
	BackendWebhook = "webhook"
	BackendScript  = "script"
)

// SubmissionConfig selects the submission collaborator.
type SubmissionConfig struct {
	Backend string        `yaml:"backend" env:"SUBMISSION_BACKEND" env-default:"webhook"`
	URL     string        `yaml:"url"     env:"SUBMISSION_URL"`
	Timeout time.Duration `yaml:"timeout" env:"SUBMISSION_TIMEOUT" env-default:"0s"`
}

// Draft storage backends.
const (
	DraftsMemory = "memory"
	DraftsFile   = "file"
	DraftsRedis  = "redis"
)

// DraftsConfig selects where drafts are kept.
type DraftsConfig struct {
	Backend   string      `yaml:"backend"    env:"DRAFTS_BACKEND"    env-default:"file"`
	Dir       string      `yaml:"dir"        env:"DRAFTS_DIR"        env-default:".phoneform/drafts"`
	KeyPrefix string      `yaml:"key_prefix" env:"DRAFTS_KEY_PREFIX" env-default:"formdraft:"`
	Redis     RedisConfig `yaml:"redis"`
}

// RedisConfig holds the Redis connection used by the redis draft backend.
type RedisConfig struct {
	Addr     string        `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	TTL      time.Duration `yaml:"ttl"      env:"REDIS_TTL"      env-default:"720h"`
}

// IntakeConfig configures the script endpoint served by phoneform-server.
type IntakeConfig struct {
	Enabled     bool   `yaml:"enabled"      env:"INTAKE_ENABLED"      env-default:"true"`
	Path        string `yaml:"path"         env:"INTAKE_PATH"         env-default:"/send-email"`
	LogFile     string `yaml:"log_file"     env:"INTAKE_LOG_FILE"     env-default:"membership_log.jsonl"`
	AllowOrigin string `yaml:"allow_origin" env:"INTAKE_ALLOW_ORIGIN" env-default:"*"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
