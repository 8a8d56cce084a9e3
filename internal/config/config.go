package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
type DatabaseConfig struct {
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// MinIOConfig holds object storage settings for MinIO.
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// S3Config holds settings for AWS S3 or any endpoint speaking the S3 API (R2, etc.).
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// StorageConfig selects where uploaded images are kept.
// Driver is one of "local", "minio" or "s3".
type StorageConfig struct {
	Driver   string
	LocalDir string
	MinIO    MinIOConfig
	S3       S3Config
}

// HTTPConfig holds settings for the public HTTP surface.
type HTTPConfig struct {
	AllowedOrigins     []string
	RateLimitPerSecond int
	BodyLimitMB        int
}

// OAuthConfig holds Google sign-in settings. The redirect flow is only
// enabled when ClientID is set to something other than the dummy placeholder.
type OAuthConfig struct {
	GoogleClientID     string
	GoogleClientSecret string
	CallbackURL        string
	SessionSecret      string
	SuccessURL         string
	FailureURL         string
}

// DummyGoogleClientID is the placeholder client id that disables Google redirects.
const DummyGoogleClientID = "dummy-client-id"

// Enabled reports whether the Google redirect flow should be registered.
func (o OAuthConfig) Enabled() bool {
	return o.GoogleClientID != "" && o.GoogleClientID != DummyGoogleClientID
}

// AppConfig is the centralized configuration struct for the application.
type AppConfig struct {
	AppHost  string
	Port     string
	TimeZone string
	Database DatabaseConfig
	Storage  StorageConfig
	HTTP     HTTPConfig
	OAuth    OAuthConfig
}

// fileValues holds fallbacks read from the optional YAML config file.
var fileValues map[string]string

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// Values missing from the environment fall back to the YAML file named by
// CONFIG_FILE (default config.yaml) and then to built-in defaults.
func Load() *AppConfig {
	fileValues = readFile(os.Getenv("CONFIG_FILE"))

	return &AppConfig{
		AppHost:  getEnv("APP_HOST", "localhost:8082"),
		Port:     getEnv("PORT", "8082"),
		TimeZone: getEnv("TZ_NAME", "UTC"),
		Database: DatabaseConfig{
			Host:               getEnv("DB_HOST", ""),
			Port:               getEnv("DB_PORT", "5432"),
			User:               getEnv("DB_USER", ""),
			Password:           getEnv("DB_PASSWORD", ""),
			Name:               getEnv("DB_NAME", ""),
			SSLMode:            getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt("DB_CONN_MAX_LIFETIME_SEC", 300),
		},
		Storage: StorageConfig{
			Driver:   strings.ToLower(getEnv("STORAGE_DRIVER", "local")),
			LocalDir: getEnv("UPLOAD_DIR", "./uploads"),
			MinIO: MinIOConfig{
				Endpoint:  getEnv("MINIO_ENDPOINT", ""),
				AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
				SecretKey: getEnv("MINIO_SECRET_KEY", ""),
				Bucket:    getEnv("MINIO_BUCKET", ""),
				UseSSL:    getEnvBool("MINIO_USE_SSL", false),
			},
			S3: S3Config{
				Bucket:    getEnv("S3_BUCKET", ""),
				Region:    getEnv("S3_REGION", "auto"),
				Endpoint:  getEnv("S3_ENDPOINT", ""),
				AccessKey: getEnv("S3_ACCESS_KEY", ""),
				SecretKey: getEnv("S3_SECRET_KEY", ""),
			},
		},
		HTTP: HTTPConfig{
			AllowedOrigins:     getEnvList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
			RateLimitPerSecond: getEnvInt("RATE_LIMIT_PER_SECOND", 20),
			BodyLimitMB:        getEnvInt("BODY_LIMIT_MB", 10),
		},
		OAuth: OAuthConfig{
			GoogleClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			GoogleClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			CallbackURL:        getEnv("GOOGLE_CALLBACK_URL", "http://localhost:8082/login/oauth2/code/google"),
			SessionSecret:      getEnv("SESSION_SECRET", ""),
			SuccessURL:         getEnv("OAUTH_SUCCESS_URL", "http://localhost:5173/userProfile"),
			FailureURL:         getEnv("OAUTH_FAILURE_URL", "http://localhost:5173/login?error=true"),
		},
	}
}

// readFile parses a flat YAML map of KEY: value pairs. A missing file is not an error.
func readFile(path string) map[string]string {
	if path == "" {
		path = "config.yaml"
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	raw := map[string]any{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if v == nil {
			continue
		}
		switch tv := v.(type) {
		case string:
			out[k] = tv
		case bool:
			out[k] = strconv.FormatBool(tv)
		case int:
			out[k] = strconv.Itoa(tv)
		default:
			out[k] = strings.TrimSpace(yamlScalar(tv))
		}
	}
	return out
}

func yamlScalar(v any) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	if v, ok := fileValues[key]; ok && v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := getEnv(key, ""); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := getEnv(key, ""); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := getEnv(key, "")
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
