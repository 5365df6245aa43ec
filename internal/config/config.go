package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	OpenAI     OpenAIConfig     `yaml:"openai"`
	Capture    CaptureConfig    `yaml:"capture"`
	RAG        RAGConfig        `yaml:"rag"`
	LocalStore LocalStoreConfig `yaml:"local_store"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	// WriteTimeout must exceed the capture transcription timeout: stop
	// blocks until the session is finalized.
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	// RateLimitPerMinute caps requests per client IP. Zero disables.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"120"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	MigrateOnStart  bool          `yaml:"migrate_on_start"   env:"DATABASE_MIGRATE_ON_START"   env-default:"true"`
}

// AuthConfig holds access token validation settings. Token issuance is the
// identity provider's job; this service only validates bearer tokens.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"recall"`
}

// OpenAIConfig holds settings for the transcription, completion and
// embedding adapters.
type OpenAIConfig struct {
	APIKey          string        `yaml:"api_key"          env:"OPENAI_API_KEY"          env-required:"true"`
	BaseURL         string        `yaml:"base_url"         env:"OPENAI_BASE_URL"         env-default:"https://api.openai.com/v1"`
	WhisperModel    string        `yaml:"whisper_model"    env:"OPENAI_WHISPER_MODEL"    env-default:"whisper-1"`
	CompletionModel string        `yaml:"completion_model" env:"OPENAI_COMPLETION_MODEL" env-default:"gpt-3.5-turbo"`
	EmbeddingModel  string        `yaml:"embedding_model"  env:"OPENAI_EMBEDDING_MODEL"  env-default:"text-embedding-ada-002"`
	EmbeddingDims   int           `yaml:"embedding_dims"   env:"OPENAI_EMBEDDING_DIMS"   env-default:"1536"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"OPENAI_REQUEST_TIMEOUT"  env-default:"60s"`
}

// CaptureConfig holds recording pipeline settings.
type CaptureConfig struct {
	// SegmentInterval is the boundary timer period: how often the live
	// stream is sealed into a segment and handed to transcription.
	SegmentInterval time.Duration `yaml:"segment_interval" env:"CAPTURE_SEGMENT_INTERVAL" env-default:"30s"`
	// TranscriptionTimeout bounds how long finalization waits for the
	// final segment's transcription before proceeding without it.
	TranscriptionTimeout time.Duration `yaml:"transcription_timeout" env:"CAPTURE_TRANSCRIPTION_TIMEOUT" env-default:"60s"`
}

// RAGConfig holds retrieval-augmented generation settings.
type RAGConfig struct {
	TopK        int     `yaml:"top_k"       env:"RAG_TOP_K"       env-default:"5"`
	Temperature float64 `yaml:"temperature" env:"RAG_TEMPERATURE" env-default:"0.3"`
}

// LocalStoreConfig holds the privacy-mode fallback store settings.
type LocalStoreConfig struct {
	Dir string `yaml:"dir" env:"LOCAL_STORE_DIR" env-default:"./private-memories"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
