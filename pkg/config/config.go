package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	JWT           JWTConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"PEAR_APP_ENV" required:"true"`
	Port         string `envconfig:"PEAR_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"PEAR_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"PEAR_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"PEAR_DB_DSN"`

	Host     string `envconfig:"PEAR_DB_HOST"`
	Port     int    `envconfig:"PEAR_DB_PORT" default:"5432"`
	User     string `envconfig:"PEAR_DB_USER"`
	Password string `envconfig:"PEAR_DB_PASSWORD"`
	Name     string `envconfig:"PEAR_DB_NAME"`
	SSLMode  string `envconfig:"PEAR_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"PEAR_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"PEAR_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"PEAR_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"PEAR_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"PEAR_REDIS_URL"`
	Address      string        `envconfig:"PEAR_REDIS_ADDR"`
	Password     string        `envconfig:"PEAR_REDIS_PASSWORD"`
	DB           int           `envconfig:"PEAR_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"PEAR_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"PEAR_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"PEAR_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"PEAR_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"PEAR_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret                 string `envconfig:"PEAR_JWT_SECRET" required:"true"`
	Issuer                 string `envconfig:"PEAR_JWT_ISSUER" default:"pear-backend"`
	ExpirationMinutes      int    `envconfig:"PEAR_JWT_EXPIRATION_MINUTES" default:"60"`
	RefreshTokenTTLMinutes int    `envconfig:"PEAR_REFRESH_TOKEN_TTL_MINUTES" default:"43200"`
}

// RefreshTokenTTL returns the refresh token TTL configured in minutes.
func (j JWTConfig) RefreshTokenTTL() time.Duration {
	if j.RefreshTokenTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.RefreshTokenTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"PEAR_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"PEAR_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"PEAR_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"PEAR_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"PEAR_ARGON_KEY_LEN" default:"32"`
}

type AuthRateLimitConfig struct {
	LoginWindow     time.Duration `envconfig:"PEAR_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit int           `envconfig:"PEAR_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit    int           `envconfig:"PEAR_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"PEAR_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := map[string]string{
		"PEAR_DB_HOST": db.Host,
		"PEAR_DB_USER": db.User,
		"PEAR_DB_NAME": db.Name,
	}
	for _, key := range []string{"PEAR_DB_HOST", "PEAR_DB_USER", "PEAR_DB_NAME"} {
		if required[key] == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("either PEAR_DB_DSN or %s are required", strings.Join(missing, ", "))
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
