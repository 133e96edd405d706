package config

import (
	"fmt"
	"github.com/spf13/viper"
	"strings"
	"time"
)

// Config is the app config
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	MySQL    MySQLConfig    `mapstructure:"mysql"`
	Memcache MemcacheConfig `mapstructure:"memcache"`
	Jaeger   JaegerConfig   `mapstructure:"jaeger"`
	Offer    OfferConfig    `mapstructure:"offer"`
}

// ServerListen for specifying host & port
type ServerListen struct {
	Host string `mapstructure:"host"`
	Port uint16 `mapstructure:"port"`
}

// ServerConfig for configure HTTP
type ServerConfig struct {
	HTTP ServerListen `mapstructure:"http"`
}

// JaegerConfig ...
type JaegerConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	URL         string  `mapstructure:"url"`
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

// OfferConfig for the offer engine
type OfferConfig struct {
	// LockWaitTimeout bounds the time a redemption waits for the offer row lock
	LockWaitTimeout time.Duration `mapstructure:"lock_wait_timeout"`
	MemCacheSize    int           `mapstructure:"mem_cache_size"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`

	// Timezone in which weekdays, seasons and holidays of offers are judged
	Timezone string `mapstructure:"timezone"`
}

// Location loads the offer timezone
func (c OfferConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: offer timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// String for host:port, used for dialing
func (s ServerListen) String() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// ListenString for listen on all interfaces
func (s ServerListen) ListenString() string {
	return fmt.Sprintf(":%d", s.Port)
}

func setDefaults(vip *viper.Viper) {
	vip.SetDefault("server.http.host", "localhost")
	vip.SetDefault("server.http.port", 10080)

	vip.SetDefault("log.level", "info")
	vip.SetDefault("log.development", false)

	vip.SetDefault("mysql.max_open_conns", 20)
	vip.SetDefault("mysql.max_idle_conns", 5)

	vip.SetDefault("memcache.enabled", false)
	vip.SetDefault("memcache.num_conns", 1)

	vip.SetDefault("jaeger.enabled", false)
	vip.SetDefault("jaeger.sample_ratio", 1.0)

	vip.SetDefault("offer.lock_wait_timeout", 2*time.Second)
	vip.SetDefault("offer.mem_cache_size", 8*1024*1024)
	vip.SetDefault("offer.cache_ttl", 30*time.Second)
	vip.SetDefault("offer.timezone", "Asia/Ho_Chi_Minh")
}

func loadConfig(dir string, name string) (Config, error) {
	vip := viper.New()

	vip.SetConfigName(name)
	vip.SetConfigType("yml")
	vip.AddConfigPath(dir)

	setDefaults(vip)

	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	if err := vip.ReadInConfig(); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load config from config.yml in the working directory
func Load() Config {
	cfg, err := loadConfig(".", "config")
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadTestConfig loads config.test.yml in the root directory of the repo
func LoadTestConfig(rootDir string) Config {
	cfg, err := loadConfig(rootDir, "config.test")
	if err != nil {
		panic(err)
	}
	return cfg
}
