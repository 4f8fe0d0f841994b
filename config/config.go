package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath             = "."
	defaultAPITimeout       = 10 * time.Second
	defaultMediaRewriteFrom = "http://localhost:3000"
	defaultStorageDriver    = "file"
	defaultStorageFile      = ".storefront/session.json"
	defaultRedisPrefix      = "storefront:"
	defaultQRCodeSize       = 256
	defaultSandboxPort      = 3000
	defaultSandboxTokenTTL  = 24 * time.Hour
	defaultCommissionRate   = 10.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// API configures the shared HTTP client that talks to the backend.
	API APIConfig `json:"api" yaml:"api"`

	// Storage selects the durable key/value store used for the session.
	Storage StorageConfig `json:"storage" yaml:"storage"`

	// Cache configures the query cache.
	Cache CacheConfig `json:"cache" yaml:"cache"`

	// Market holds client-side defaults for store and product forms.
	Market MarketConfig `json:"market" yaml:"market"`

	// Location is the fixed device position used by nearby searches. Nil means unknown.
	Location *LocationConfig `json:"location" yaml:"location"`

	// QRCode configuration for store share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Sandbox configures the local backend emulator.
	Sandbox *SandboxConfig `json:"sandbox" yaml:"sandbox"`

	Metrics struct {
		Enabled bool `json:"enabled" yaml:"enabled"`
	} `json:"metrics" yaml:"metrics"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// APIConfig defines the backend endpoint and request defaults
type APIConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Extra headers sent with every request, e.g. ngrok-skip-browser-warning.
	Headers map[string]string `json:"headers" yaml:"headers"`

	// Media URLs starting with this origin are rewritten onto the API origin.
	MediaRewriteFrom string `json:"mediaRewriteFrom" yaml:"mediaRewriteFrom"`
}

// StorageConfig defines where the session is persisted
type StorageConfig struct {
	// Driver is one of "file", "redis" or "memory".
	Driver string `json:"driver" yaml:"driver"`

	// Path of the session file for the file driver.
	Path string `json:"path" yaml:"path"`

	Redis *RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig defines the redis connection for the redis storage driver
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

// CacheConfig defines query cache behaviour
type CacheConfig struct {
	// Retry is the default number of extra attempts for a failed query.
	Retry int `json:"retry" yaml:"retry"`

	// StaleTime marks cached data stale after this duration. Zero keeps data fresh until invalidated.
	StaleTime time.Duration `json:"staleTime" yaml:"staleTime"`
}

// MarketConfig defines defaults applied by the market forms
type MarketConfig struct {
	DefaultCommissionRate float64 `json:"defaultCommissionRate" yaml:"defaultCommissionRate"`
}

// LocationConfig defines a fixed device position
type LocationConfig struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// SandboxConfig defines the local backend emulator
type SandboxConfig struct {
	Port       int           `json:"port" yaml:"port"`
	SecretKey  string        `json:"secretKey" yaml:"secretKey"`
	TokenTTL   time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost"`
	PublicURL  string        `json:"publicUrl" yaml:"publicUrl"`

	// UploadsDir keeps uploaded images on disk. Empty keeps them in memory.
	UploadsDir string `json:"uploadsDir" yaml:"uploadsDir"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// API_BASEURL -> api.baseUrl, aligned with the keys already present in the YAML.
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
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

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills every optional value and rejects configurations the client cannot run with.
func (cfg *Config) applyDefaults() error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return errors.New("api.baseUrl is required")
	}
	cfg.API.BaseURL = strings.TrimRight(cfg.API.BaseURL, "/")

	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultAPITimeout
	}
	if cfg.API.MediaRewriteFrom == "" {
		cfg.API.MediaRewriteFrom = defaultMediaRewriteFrom
	}

	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = defaultStorageDriver
	}
	if cfg.Storage.Driver == "file" && cfg.Storage.Path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "os.UserHomeDir")
		}
		cfg.Storage.Path = filepath.Join(home, defaultStorageFile)
	}
	if cfg.Storage.Redis != nil && cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = defaultRedisPrefix
	}

	if cfg.Cache.Retry < 0 {
		cfg.Cache.Retry = 0
	}

	if cfg.Market.DefaultCommissionRate <= 0 {
		cfg.Market.DefaultCommissionRate = defaultCommissionRate
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
	if cfg.QRCode.BaseURL == "" {
		cfg.QRCode.BaseURL = cfg.API.BaseURL
	}

	if cfg.Sandbox != nil {
		if cfg.Sandbox.Port == 0 {
			cfg.Sandbox.Port = defaultSandboxPort
		}
		if cfg.Sandbox.TokenTTL <= 0 {
			cfg.Sandbox.TokenTTL = defaultSandboxTokenTTL
		}
		if cfg.Sandbox.PublicURL == "" {
			cfg.Sandbox.PublicURL = "http://localhost:" + strconv.Itoa(cfg.Sandbox.Port)
		}
		cfg.Sandbox.PublicURL = strings.TrimRight(cfg.Sandbox.PublicURL, "/")
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
