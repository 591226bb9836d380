package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Cookie  CookieConfig
	Storage StorageConfig
	Redis   RedisConfig
	Booking BookingConfig
	Admin   AdminBootstrapConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"10s"`
	WriteTimeout      time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"60s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"15s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Manila"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns int32  `envconfig:"DB_MIN_CONNS" default:"1"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Manila"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

type JWTConfig struct {
	Secret               string        `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  time.Duration `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"1h"`
	RefreshTokenDuration time.Duration `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type StorageConfig struct {
	Driver         string `envconfig:"STORAGE_DRIVER" default:"local"` // local | s3
	LocalDir       string `envconfig:"STORAGE_LOCAL_DIR" default:"./uploads"`
	PublicBaseURL  string `envconfig:"STORAGE_PUBLIC_BASE_URL" default:"/api/files/view"`
	MaxUploadBytes int64  `envconfig:"STORAGE_MAX_UPLOAD_BYTES" default:"10485760"`
	S3Bucket       string `envconfig:"S3_BUCKET" default:""`
	S3Region       string `envconfig:"S3_REGION" default:"ap-southeast-1"`
	S3Endpoint     string `envconfig:"S3_ENDPOINT" default:""`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY" default:""`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY" default:""`
	S3UsePathStyle bool   `envconfig:"S3_USE_PATH_STYLE" default:"false"`
}

type RedisConfig struct {
	URL     string `envconfig:"REDIS_URL" default:""`
	Channel string `envconfig:"REDIS_CHANNEL" default:"studio-booking.events"`
}

type BookingConfig struct {
	ReferenceRetries   int    `envconfig:"BOOKING_REFERENCE_RETRIES" default:"3"`
	DefaultManualEmail string `envconfig:"BOOKING_DEFAULT_MANUAL_EMAIL" default:"manual-booking@admin.com"`
	// TimeZone is the studio's zone; "today" for upcoming bookings is taken here.
	TimeZone           string `envconfig:"BOOKING_TIMEZONE" default:"Asia/Manila"`
}

// AdminBootstrapConfig seeds the first administrator on startup when both
// fields are set.
type AdminBootstrapConfig struct {
	Email    string `envconfig:"ADMIN_BOOTSTRAP_EMAIL" default:""`
	Password string `envconfig:"ADMIN_BOOTSTRAP_PASSWORD" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	// .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

const minJWTSecretLen = 32

// Validate catches settings envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	var problems []string
	if len(c.JWT.Secret) < minJWTSecretLen {
		problems = append(problems, fmt.Sprintf("JWT_SECRET must be at least %d bytes", minJWTSecretLen))
	}
	switch c.Storage.Driver {
	case "local":
	case "s3":
		if c.Storage.S3Bucket == "" {
			problems = append(problems, "S3_BUCKET is required when STORAGE_DRIVER=s3")
		}
	default:
		problems = append(problems, fmt.Sprintf("STORAGE_DRIVER %q is not one of local, s3", c.Storage.Driver))
	}
	if c.Storage.MaxUploadBytes <= 0 {
		problems = append(problems, "STORAGE_MAX_UPLOAD_BYTES must be positive")
	}
	if c.Booking.ReferenceRetries < 1 {
		problems = append(problems, "BOOKING_REFERENCE_RETRIES must be at least 1")
	}
	if (c.Admin.Email == "") != (c.Admin.Password == "") {
		problems = append(problems, "ADMIN_BOOTSTRAP_EMAIL and ADMIN_BOOTSTRAP_PASSWORD must be set together")
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Manila",
			MaxConns: 5,
			MinConns: 1,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Manila",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 28800,
		},
		JWT: JWTConfig{
			Secret:               "test-secret-key-for-e2e-only-0123456789",
			AccessTokenDuration:  time.Hour,
			RefreshTokenDuration: 24 * time.Hour,
		},
		Storage: StorageConfig{
			Driver:         "local",
			PublicBaseURL:  "/api/files/view",
			MaxUploadBytes: 1 << 20,
		},
		Booking: BookingConfig{
			ReferenceRetries:   3,
			DefaultManualEmail: "manual-booking@admin.com",
			TimeZone:           "Asia/Manila",
		},
	}
}
