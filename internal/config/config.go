package config

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	viper "github.com/spf13/viper"
)

/*
init 與 read 分開
init : 設置 viper watch 與 onConfigChange
read : 一般讀取, 需要讀寫鎖
*/
var configSingleton *ConfigSingleTon
var muonce sync.Once

type ConfigSingleTon struct {
	Config *Config
	mu     sync.RWMutex
}

type Config struct {
	Env                string `mapstructure:"ENV"`
	ServerPort         string `mapstructure:"SERVER_PORT"`
	DbDriver           string `mapstructure:"DB_DRIVER"`
	SqlitePath         string `mapstructure:"SQLITE_PATH"`
	DbName             string `mapstructure:"POSTGRES_DB"`
	DbHost             string `mapstructure:"POSTGRES_HOST"`
	DbPort             string `mapstructure:"POSTGRES_PORT"`
	DbUser             string `mapstructure:"POSTGRES_USER"`
	DbPas              string `mapstructure:"POSTGRES_PASSWORD"`
	MigrationURL       string `mapstructure:"MIGRATION_URL"`
	RedisAddr          string `mapstructure:"REDIS_ADDR"`
	RedisPassword      string `mapstructure:"REDIS_PASSWORD"`
	RedisDB            int    `mapstructure:"REDIS_DB"`
	KafkaBrokers       string `mapstructure:"KAFKA_BROKERS"`
	KafkaTopic         string `mapstructure:"KAFKA_TOPIC"`
	AuthTokenKey       string `mapstructure:"AUTH_TOKEN_KEY"`
	RateLimitCapacity  int    `mapstructure:"RATE_LIMIT_CAPACITY"`
	RateLimitPerSecond int    `mapstructure:"RATE_LIMIT_PER_SECOND"`
	RateLimitUseRedis  bool   `mapstructure:"RATE_LIMIT_USE_REDIS"`
	SeedFile           string `mapstructure:"SEED_FILE"`
}

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
)

// UseSqlite 本機模式, 不需要 postgres
func (c *Config) UseSqlite() bool {
	return strings.EqualFold(strings.TrimSpace(c.DbDriver), DriverSqlite)
}

// KafkaBrokerList 以逗號分隔的 broker 清單, 空字串代表不發送事件
func (c *Config) KafkaBrokerList() []string {
	var brokers []string
	for _, b := range strings.Split(c.KafkaBrokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func GetConfig() *Config {
	initConfig()
	configSingleton.mu.RLock()
	defer configSingleton.mu.RUnlock()
	return configSingleton.Config
}

func initConfig() {
	muonce.Do(func() {
		configSingleton = &ConfigSingleTon{}
		cf, err := loadConfig()
		if err != nil {
			log.Fatalf("error read config: %v", err)
		}
		configSingleton.Config = cf

		if viper.ConfigFileUsed() == "" {
			return
		}
		viper.WatchConfig()
		viper.OnConfigChange(func(e fsnotify.Event) {
			log.Printf("config file changed: %s", e.Name)
			if cf, err := loadConfig(); err == nil {
				configSingleton.Config = cf
			} else {
				log.Printf("failed to reload config file: %v", err)
			}
		})
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", "development")
	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("SQLITE_PATH", "gleam_heaven.db")
	v.SetDefault("POSTGRES_DB", "gleam_heaven")
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("MIGRATION_URL", "file://internal/infra/repository/db/migrations")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "gleam-heaven.events")
	v.SetDefault("AUTH_TOKEN_KEY", "")
	v.SetDefault("RATE_LIMIT_CAPACITY", 100)
	v.SetDefault("RATE_LIMIT_PER_SECOND", 20)
	v.SetDefault("RATE_LIMIT_USE_REDIS", false)
	v.SetDefault("SEED_FILE", "docs/seed.yaml")
}

/*
單純回傳錯誤, 由外部決定要不要Fatal
*/
func loadConfig() (*Config, error) {
	configSingleton.mu.Lock()
	defer configSingleton.mu.Unlock()

	setDefaults(viper.GetViper())
	viper.AutomaticEnv()

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = ".env"
	}
	if _, err := os.Stat(path); err == nil {
		viper.SetConfigFile(path)
		viper.SetConfigType("env")
		if err := viper.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	return unmarshal(viper.GetViper())
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cf := &Config{}
	if err := v.Unmarshal(cf); err != nil {
		return nil, err
	}
	return cf, nil
}

// LoadConfigFrom 讀取指定的 env 檔, 不影響全域設定
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}
	return unmarshal(v)
}
