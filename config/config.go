package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultPageSize           = 10
	defaultRemoteTimeout      = 30 * time.Second
	defaultPreviewTTL         = 30 * time.Minute
	defaultSweepInterval      = 5 * time.Minute
	defaultThumbnailWidth     = 320
	defaultMaxUploadSize      = 8 << 20
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Remote is the back office API the console fronts.
	Remote RemoteConfig `json:"remote" yaml:"remote"`

	Session SessionConfig `json:"session" yaml:"session"`

	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	Previews PreviewConfig `json:"previews" yaml:"previews"`

	// Notification configures how delivery updates reach customers
	Notification *NotificationConfig `json:"notification" yaml:"notification"`

	// QRCode configuration for delivery tracking labels
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`

	Pagination struct {
		PageSize int `json:"pageSize" yaml:"pageSize"`
	} `json:"pagination" yaml:"pagination"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RemoteConfig points at the remote API. BaseURL must include the /api/ prefix.
type RemoteConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// SessionConfig defines the browser session cookie and CSRF keys
type SessionConfig struct {
	CookieName string `json:"cookieName" yaml:"cookieName"`
	AuthKey    string `json:"authKey" yaml:"authKey"`
	CSRFKey    string `json:"csrfKey" yaml:"csrfKey"`
	Secure     bool   `json:"secure" yaml:"secure"`
	MaxAge     int    `json:"maxAge" yaml:"maxAge"`
}

// StorageConfig selects where session records and settings live.
type StorageConfig struct {
	// Provider type: "memory" or "postgres"
	Provider string `json:"provider" yaml:"provider"`
}

// PreviewConfig defines staging storage for media previews
type PreviewConfig struct {
	// Bucket URL understood by gocloud.dev/blob, e.g. mem://, file:///tmp/previews, s3://bucket
	BucketURL      string        `json:"bucketUrl" yaml:"bucketUrl"`
	TTL            time.Duration `json:"ttl" yaml:"ttl"`
	SweepInterval  time.Duration `json:"sweepInterval" yaml:"sweepInterval"`
	MaxUploadSize  int64         `json:"maxUploadSize" yaml:"maxUploadSize"`
	ThumbnailWidth uint          `json:"thumbnailWidth" yaml:"thumbnailWidth"`
}

// NotificationConfig defines the delivery notification provider
type NotificationConfig struct {
	// Provider type: "none", "local", "google" or "firebase"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Service account file (firebase provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// MetricsConfig defines the OTLP metrics exporter
type MetricsConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
	// Endpoint is host:port without scheme, e.g. localhost:4318
	Endpoint string        `json:"endpoint" yaml:"endpoint"`
	Insecure bool          `json:"insecure" yaml:"insecure"`
	Headers  string        `json:"headers" yaml:"headers"`
	Interval time.Duration `json:"interval" yaml:"interval"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	var configFile string
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate

			break
		}
	}

	if configFile == "" {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// REMOTE_BASEURL -> remote.baseUrl, aligned with the keys already present in YAML.
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

// New loads .env (optional), then config.yaml plus environment overrides.
func New() (*Config, error) {
	// .env is optional; only a malformed file is an error.
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, errors.Wrap(err, "load .env")
		}
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// NewCLI returns the defaults with the API location set; the terminal client
// keeps its session in a file and needs no cookie keys or storage.
func NewCLI(baseURL string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return nil, errors.Wrap(err, "load .env")
		}
	}

	cfg := &Config{}
	cfg.Remote.BaseURL = baseURL
	if cfg.Remote.BaseURL == "" {
		cfg.Remote.BaseURL = os.Getenv("REMOTE_BASEURL")
	}
	cfg.Env.Log.Level = "warn"
	cfg.Env.Log.Pretty = true
	cfg.applyDefaults()

	if cfg.Remote.BaseURL == "" {
		return nil, errors.New("remote API URL is required (-api or REMOTE_BASEURL)")
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Remote.Timeout <= 0 {
		cfg.Remote.Timeout = defaultRemoteTimeout
	}
	if !strings.HasSuffix(cfg.Remote.BaseURL, "/") && cfg.Remote.BaseURL != "" {
		cfg.Remote.BaseURL += "/"
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "backoffice-session"
	}
	if cfg.Storage.Provider == "" {
		cfg.Storage.Provider = "memory"
	}
	if cfg.Previews.BucketURL == "" {
		cfg.Previews.BucketURL = "mem://"
	}
	if cfg.Previews.TTL <= 0 {
		cfg.Previews.TTL = defaultPreviewTTL
	}
	if cfg.Previews.SweepInterval <= 0 {
		cfg.Previews.SweepInterval = defaultSweepInterval
	}
	if cfg.Previews.MaxUploadSize <= 0 {
		cfg.Previews.MaxUploadSize = defaultMaxUploadSize
	}
	if cfg.Previews.ThumbnailWidth == 0 {
		cfg.Previews.ThumbnailWidth = defaultThumbnailWidth
	}
	if cfg.Pagination.PageSize <= 0 {
		cfg.Pagination.PageSize = defaultPageSize
	}
}

func (cfg *Config) validate() error {
	if cfg.Remote.BaseURL == "" {
		return errors.New("remote.baseUrl is required")
	}
	if len(cfg.Session.AuthKey) < 32 {
		return errors.New("session.authKey must be at least 32 bytes")
	}
	if len(cfg.Session.CSRFKey) != 32 {
		return errors.New("session.csrfKey must be exactly 32 bytes")
	}
	if cfg.Storage.Provider == "postgres" && cfg.Postgres == nil {
		return errors.New("postgres section is required for the postgres storage provider")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
