package config

import (
	"os"
	"path/filepath"
	"strconv"
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
	defaultMaxRequestBodySize = "100KB"
)

// Pipeline defaults applied when the config file leaves a value unset.
const (
	DefaultRadiusKm         = 0.1
	DefaultMinRadiusKm      = 0.01
	DefaultMaxRadiusKm      = 10.0
	DefaultOperationTimeout = 5 * time.Second

	DefaultOutboxSchedule     = "@every 2s"
	DefaultOutboxBatchSize    = 100
	DefaultOutboxMaxAttempts  = 8
	DefaultOutboxRetryBackoff = 5 * time.Second

	DefaultWorkerPort = 8081

	DefaultNotificationLimit  = 20
	DefaultNotificationWindow = time.Hour
	DefaultDeliveryDedupTTL   = 24 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`
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

	// Worker configuration for the push notification receiver
	Worker *WorkerConfig `json:"worker" yaml:"worker"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// Pipeline configuration for duplicate matching and transition timeouts
	Pipeline *PipelineConfig `json:"pipeline" yaml:"pipeline"`

	// Outbox configuration for the notification relay
	Outbox *OutboxConfig `json:"outbox" yaml:"outbox"`

	// Redis configuration for shared expiring counters
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// Queries slower than this are logged at warn level; zero uses the default
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// PipelineConfig defines the duplicate search radius bounds and the per-operation budget.
type PipelineConfig struct {
	DefaultRadiusKm  float64       `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MinRadiusKm      float64       `json:"minRadiusKm" yaml:"minRadiusKm"`
	MaxRadiusKm      float64       `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	OperationTimeout time.Duration `json:"operationTimeout" yaml:"operationTimeout"`
}

// OutboxConfig defines how the relay drains the notification outbox.
type OutboxConfig struct {
	// Cron spec for the relay job, e.g. "@every 2s"
	Schedule string `json:"schedule" yaml:"schedule"`

	BatchSize    int           `json:"batchSize" yaml:"batchSize"`
	MaxAttempts  int           `json:"maxAttempts" yaml:"maxAttempts"`
	RetryBackoff time.Duration `json:"retryBackoff" yaml:"retryBackoff"`
}

// WorkerConfig defines where the push worker listens.
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

// RedisConfig defines the shared counter store.
type RedisConfig struct {
	// Empty Addr disables Redis; throttling and de-duplication become no-ops.
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`

	// Maximum notifications per recipient per window
	NotificationLimit  int           `json:"notificationLimit" yaml:"notificationLimit"`
	NotificationWindow time.Duration `json:"notificationWindow" yaml:"notificationWindow"`

	// How long the push worker remembers delivered event ids
	DeliveryDedupTTL time.Duration `json:"deliveryDedupTtl" yaml:"deliveryDedupTtl"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local", "google", "gocloud" or "noop"
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Portable topic URL (for gocloud provider), e.g. "mem://notifications"
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`
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

	// Try to find and load the config file
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

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env failed")
	}

	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Postgres != nil {
		// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills unset pipeline, outbox, worker and redis settings.
func (c *Config) ApplyDefaults() {
	if c.Pipeline == nil {
		c.Pipeline = &PipelineConfig{}
	}
	if c.Pipeline.DefaultRadiusKm == 0 {
		c.Pipeline.DefaultRadiusKm = DefaultRadiusKm
	}
	if c.Pipeline.MinRadiusKm == 0 {
		c.Pipeline.MinRadiusKm = DefaultMinRadiusKm
	}
	if c.Pipeline.MaxRadiusKm == 0 {
		c.Pipeline.MaxRadiusKm = DefaultMaxRadiusKm
	}
	if c.Pipeline.OperationTimeout == 0 {
		c.Pipeline.OperationTimeout = DefaultOperationTimeout
	}

	if c.Outbox == nil {
		c.Outbox = &OutboxConfig{}
	}
	if strings.TrimSpace(c.Outbox.Schedule) == "" {
		c.Outbox.Schedule = DefaultOutboxSchedule
	}
	if c.Outbox.BatchSize <= 0 {
		c.Outbox.BatchSize = DefaultOutboxBatchSize
	}
	if c.Outbox.MaxAttempts <= 0 {
		c.Outbox.MaxAttempts = DefaultOutboxMaxAttempts
	}
	if c.Outbox.RetryBackoff <= 0 {
		c.Outbox.RetryBackoff = DefaultOutboxRetryBackoff
	}

	if c.Worker == nil {
		c.Worker = &WorkerConfig{}
	}
	if c.Worker.Port <= 0 {
		c.Worker.Port = DefaultWorkerPort
	}

	if c.Redis == nil {
		c.Redis = &RedisConfig{}
	}
	if c.Redis.NotificationLimit <= 0 {
		c.Redis.NotificationLimit = DefaultNotificationLimit
	}
	if c.Redis.NotificationWindow <= 0 {
		c.Redis.NotificationWindow = DefaultNotificationWindow
	}
	if c.Redis.DeliveryDedupTTL <= 0 {
		c.Redis.DeliveryDedupTTL = DefaultDeliveryDedupTTL
	}
}

// Validate rejects settings the pipeline cannot run with.
func (c *Config) Validate() error {
	p := c.Pipeline
	if p.MinRadiusKm <= 0 || p.MinRadiusKm > p.MaxRadiusKm {
		return errors.Errorf("pipeline radius bounds are invalid: min=%v max=%v", p.MinRadiusKm, p.MaxRadiusKm)
	}
	if p.DefaultRadiusKm < p.MinRadiusKm || p.DefaultRadiusKm > p.MaxRadiusKm {
		return errors.Errorf("pipeline default radius %v is outside [%v, %v]", p.DefaultRadiusKm, p.MinRadiusKm, p.MaxRadiusKm)
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
