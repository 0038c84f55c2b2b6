package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	parking_sms "parking_sms"
	"parking_sms/internal/models"
	"parking_sms/internal/parking"

	"github.com/spf13/viper"
)

const envPrefix = "PARKING"

// Store drivers.
const (
	StoreSQLite = "sqlite"
	StoreRedis  = "redis"
)

type Config struct {
	Port   string
	Strict bool // panic on tariff contract violations instead of repairing

	Log     LogConfig
	DB      DBConfig
	Store   StoreConfig
	Auth    AuthConfig
	SMS     SMSConfig
	Watcher WatcherConfig

	Tariffs models.TariffTable
}

type LogConfig struct {
	Level  string
	Format string // console | json
}

type DBConfig struct {
	Path string
}

type StoreConfig struct {
	Driver string
	Redis  RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

type SMSConfig struct {
	Destination string
}

type WatcherConfig struct {
	Enabled  bool
	Interval time.Duration
}

// New returns a viper instance with defaults and PARKING_* env overrides.
// An empty path searches configs/config.yml and tolerates its absence.
func New(path string) *viper.Viper {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("configs") // configs/config.yml
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("app.strict", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("store.driver", StoreSQLite)
	v.SetDefault("store.redis.addr", "localhost:6379")
	v.SetDefault("store.redis.db", 0)
	v.SetDefault("store.redis.prefix", "parking")
	v.SetDefault("auth.signing_key", "")
	v.SetDefault("auth.token_ttl", time.Hour)
	v.SetDefault("sms.destination", parking_sms.DestinationNumber)
	v.SetDefault("watcher.enabled", true)
	v.SetDefault("watcher.interval", 30*time.Second)
}

// Load reads the config file (if any) and builds a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		Port:   v.GetString("port"),
		Strict: v.GetBool("app.strict"),
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("log.level")),
			Format: strings.ToLower(v.GetString("log.format")),
		},
		DB: DBConfig{Path: v.GetString("db.path")},
		Store: StoreConfig{
			Driver: strings.ToLower(v.GetString("store.driver")),
			Redis: RedisConfig{
				Addr:     v.GetString("store.redis.addr"),
				Password: v.GetString("store.redis.password"),
				DB:       v.GetInt("store.redis.db"),
				Prefix:   v.GetString("store.redis.prefix"),
			},
		},
		Auth: AuthConfig{
			SigningKey: v.GetString("auth.signing_key"),
			TokenTTL:   v.GetDuration("auth.token_ttl"),
		},
		SMS: SMSConfig{Destination: v.GetString("sms.destination")},
		Watcher: WatcherConfig{
			Enabled:  v.GetBool("watcher.enabled"),
			Interval: v.GetDuration("watcher.interval"),
		},
	}

	tariffs, err := loadTariffs(v)
	if err != nil {
		return nil, err
	}
	cfg.Tariffs = tariffs

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadTariffs reads the "tariffs" list, falling back to the built-in table.
func loadTariffs(v *viper.Viper) (models.TariffTable, error) {
	var zones []models.TariffZone
	if err := v.UnmarshalKey("tariffs", &zones); err != nil {
		return models.TariffTable{}, fmt.Errorf("decode tariffs: %w", err)
	}
	table := models.TariffTable{Zones: zones}
	if len(zones) == 0 {
		table = parking_sms.DefaultTariffs()
	}
	return parking.ValidateTable(table)
}

// Validate checks values that have no sensible fallback.
func (c *Config) Validate() error {
	// users and the activity log live in SQLite whatever the snapshot store
	if c.DB.Path == "" {
		return errors.New("db.path must be set")
	}
	switch c.Store.Driver {
	case StoreSQLite:
	case StoreRedis:
		if c.Store.Redis.Addr == "" {
			return errors.New("store.redis.addr must be set for the redis store")
		}
	default:
		return fmt.Errorf("unsupported store.driver %q (want %s or %s)", c.Store.Driver, StoreSQLite, StoreRedis)
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if c.SMS.Destination == "" {
		return errors.New("sms.destination must be set")
	}
	if c.Watcher.Enabled && c.Watcher.Interval <= 0 {
		return errors.New("watcher.interval must be positive")
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("unsupported log.format %q", c.Log.Format)
	}
	return nil
}
