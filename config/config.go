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
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "10MB"
	defaultClosingHour        = 21
	defaultTimezone           = "Asia/Kuwait"
	defaultStatusCacheTTL     = 5 * time.Minute
)

type Config struct {
	Env         EnvConfig          `json:"env" yaml:"env"`
	HTTP        HTTPConfig         `json:"http" yaml:"http"`
	Postgres    *postgres.DBConn   `json:"postgres" yaml:"postgres" mapstructure:"postgres"`
	SecretKey   SecretKeyConfig    `json:"secretKey" yaml:"secretKey"`
	Auth        *AuthConfig        `json:"auth" yaml:"auth"`
	GoogleOAuth *GoogleOAuthConfig `json:"googleOAuth" yaml:"googleOAuth"`
	MyFatoorah  *MyFatoorahConfig  `json:"myFatoorah" yaml:"myFatoorah"`
	Payment     *PaymentConfig     `json:"payment" yaml:"payment"`
	Store       *StoreConfig       `json:"store" yaml:"store"`
	Storage     *StorageConfig     `json:"storage" yaml:"storage"`
	Redis       *RedisConfig       `json:"redis" yaml:"redis"`
	PubSub      *PubSubConfig      `json:"pubsub" yaml:"pubsub"`
	Kafka       *KafkaConfig       `json:"kafka" yaml:"kafka"`
	Firebase    *FirebaseConfig    `json:"firebase" yaml:"firebase"`
	QRCode      *QRCodeConfig      `json:"qrcode" yaml:"qrcode"`
}

type EnvConfig struct {
	Env         string `json:"env" yaml:"env"`
	ServiceName string `json:"serviceName" yaml:"serviceName"`
	Debug       bool   `json:"debug" yaml:"debug"`
	Log         Log    `json:"log" yaml:"log"`
}

type HTTPConfig struct {
	Port               int          `json:"port" yaml:"port"`
	MaxRequestBodySize string       `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
	AllowedOrigins     []string     `json:"allowedOrigins" yaml:"allowedOrigins"`
	Timeouts           HTTPTimeouts `json:"timeouts" yaml:"timeouts"`
}

type HTTPTimeouts struct {
	ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
	ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
	WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
	IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
}

// SecretKeyConfig holds the JWT signing secret. It has no default.
type SecretKeyConfig struct {
	Access string `json:"access" yaml:"access"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost   int           `json:"bcryptCost" yaml:"bcryptCost"`
	TokenTTL     time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
	CookieSecure bool          `json:"cookieSecure" yaml:"cookieSecure"`
	CookieDomain string        `json:"cookieDomain" yaml:"cookieDomain"`
}

// GoogleOAuthConfig is used for ID token verification only.
type GoogleOAuthConfig struct {
	ClientID string `json:"clientId" yaml:"clientId"`
}

// MyFatoorahConfig configures the hosted-checkout gateway.
type MyFatoorahConfig struct {
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey        string        `json:"apiKey" yaml:"apiKey"`
	WebhookSecret string        `json:"webhookSecret" yaml:"webhookSecret"`
	Currency      string        `json:"currency" yaml:"currency"`
	Language      string        `json:"language" yaml:"language"`
	CallbackURL   string        `json:"callbackUrl" yaml:"callbackUrl"`
	ErrorURL      string        `json:"errorUrl" yaml:"errorUrl"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`
}

// PaymentConfig controls status caching and the reconciliation sweep.
type PaymentConfig struct {
	SuccessRedirectURL string        `json:"successRedirectUrl" yaml:"successRedirectUrl"`
	FailureRedirectURL string        `json:"failureRedirectUrl" yaml:"failureRedirectUrl"`
	StatusCacheTTL     time.Duration `json:"statusCacheTtl" yaml:"statusCacheTtl"`
	ReconcileInterval  time.Duration `json:"reconcileInterval" yaml:"reconcileInterval"`
	ReconcileGrace     time.Duration `json:"reconcileGrace" yaml:"reconcileGrace"`
	ReconcileBatchSize int           `json:"reconcileBatchSize" yaml:"reconcileBatchSize"`
}

// StoreConfig holds the same-day closing cutoff. ClosingHour is a pointer so
// an explicit 0 (closed for same-day orders all day) is kept.
type StoreConfig struct {
	ClosingHour *int   `json:"closingHour" yaml:"closingHour"`
	Timezone    string `json:"timezone" yaml:"timezone"`
}

// StorageConfig points the image store at a gocloud.dev bucket URL
// (s3://, gs://, file://, mem://).
type StorageConfig struct {
	BucketURL     string `json:"bucketUrl" yaml:"bucketUrl"`
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
	KeyPrefix     string `json:"keyPrefix" yaml:"keyPrefix"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
}

// PubSubConfig selects the order event publisher.
type PubSubConfig struct {
	// Provider is one of noop, local, google, kafka.
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project and topic (google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`
	TopicID   string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

type KafkaConfig struct {
	Brokers []string `json:"brokers" yaml:"brokers"`
	Topic   string   `json:"topic" yaml:"topic"`
}

// FirebaseConfig enables staff push notifications.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	StaffTopic      string `json:"staffTopic" yaml:"staffTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
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
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	if cfg.Postgres != nil {
		// POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, ...
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Store == nil {
		cfg.Store = &StoreConfig{}
	}
	if cfg.Store.ClosingHour == nil {
		closingHour := defaultClosingHour
		cfg.Store.ClosingHour = &closingHour
	}
	if cfg.Store.Timezone == "" {
		cfg.Store.Timezone = defaultTimezone
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.StatusCacheTTL == 0 {
		cfg.Payment.StatusCacheTTL = defaultStatusCacheTTL
	}
	if cfg.Payment.ReconcileGrace == 0 {
		cfg.Payment.ReconcileGrace = 15 * time.Minute
	}
	if cfg.Payment.ReconcileBatchSize == 0 {
		cfg.Payment.ReconcileBatchSize = 50
	}
}

// Validate rejects configurations missing secrets. Secrets never fall back
// to built-in values.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.SecretKey.Access) == "" {
		return errors.New("secretKey.access must be set (SECRETKEY_ACCESS)")
	}

	if cfg.MyFatoorah == nil || strings.TrimSpace(cfg.MyFatoorah.WebhookSecret) == "" {
		return errors.New("myFatoorah.webhookSecret must be set (MYFATOORAH_WEBHOOKSECRET)")
	}

	if hour := cfg.Store.Cutoff(); hour < 0 || hour > 24 {
		return errors.Errorf("store.closingHour must be within 0..24, got %d", hour)
	}

	if _, err := time.LoadLocation(cfg.Store.Timezone); err != nil {
		return errors.Wrapf(err, "store.timezone %q", cfg.Store.Timezone)
	}

	return nil
}

// Cutoff returns the closing hour, or the default when none is set.
func (s *StoreConfig) Cutoff() int {
	if s.ClosingHour == nil {
		return defaultClosingHour
	}

	return *s.ClosingHour
}

// Location returns the store's time zone. Validate has already checked it.
func (s *StoreConfig) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}

	return loc
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
