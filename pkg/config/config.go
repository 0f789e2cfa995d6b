package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
	Market        MarketConfig
	Session       SessionConfig
	Watcher       WatcherConfig
	Uploads       UploadsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TERUZA_APP_ENV" required:"true"`
	Port         string `envconfig:"TERUZA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"TERUZA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TERUZA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TERUZA_DB_DSN"`
	Driver string `envconfig:"TERUZA_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"TERUZA_DB_HOST"`
	Port     int    `envconfig:"TERUZA_DB_PORT" default:"5432"`
	User     string `envconfig:"TERUZA_DB_USER"`
	Password string `envconfig:"TERUZA_DB_PASSWORD"`
	Name     string `envconfig:"TERUZA_DB_NAME"`
	SSLMode  string `envconfig:"TERUZA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TERUZA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TERUZA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TERUZA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TERUZA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TERUZA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"TERUZA_REDIS_ADDR"`
	Password     string        `envconfig:"TERUZA_REDIS_PASSWORD"`
	DB           int           `envconfig:"TERUZA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TERUZA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TERUZA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TERUZA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TERUZA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TERUZA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"TERUZA_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"TERUZA_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"TERUZA_JWT_EXPIRATION_MINUTES" default:"10080"`
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"TERUZA_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"TERUZA_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"TERUZA_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"TERUZA_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"TERUZA_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"TERUZA_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"TERUZA_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"TERUZA_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"TERUZA_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"TERUZA_AUTO_MIGRATE" default:"false"`
	SeedAdmin   bool `envconfig:"TERUZA_SEED_ADMIN" default:"false"`
}

// MarketConfig carries the storefront constants the guest flow depends on.
type MarketConfig struct {
	DeliveryFee            string `envconfig:"TERUZA_MARKET_DELIVERY_FEE" default:"5.00"`
	DefaultWhatsAppNumber  string `envconfig:"TERUZA_MARKET_DEFAULT_WHATSAPP" default:"5521988760870"`
	DefaultAdminEmail      string `envconfig:"TERUZA_MARKET_DEFAULT_ADMIN_EMAIL" default:"admin@teruza.com"`
	DefaultAdminPassword   string `envconfig:"TERUZA_MARKET_DEFAULT_ADMIN_PASSWORD"`
	AnalyticsQueueCapacity int    `envconfig:"TERUZA_MARKET_ANALYTICS_QUEUE" default:"256"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"TERUZA_SESSION_COOKIE" default:"teruza_session"`
	CartTTL    time.Duration `envconfig:"TERUZA_SESSION_CART_TTL" default:"24h"`
	HandoffTTL time.Duration `envconfig:"TERUZA_SESSION_HANDOFF_TTL" default:"1h"`
}

type WatcherConfig struct {
	PollInterval time.Duration `envconfig:"TERUZA_WATCHER_POLL_INTERVAL" default:"30s"`
	PollTimeout  time.Duration `envconfig:"TERUZA_WATCHER_POLL_TIMEOUT" default:"25s"`
	MetricsPort  string        `envconfig:"TERUZA_WATCHER_METRICS_PORT" default:"9091"`
}

type UploadsConfig struct {
	MaxImageMB int `envconfig:"TERUZA_UPLOADS_MAX_IMAGE_MB" default:"5"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	values := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range requiredDBEnvVars {
		if values[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
