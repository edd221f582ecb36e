package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configFileEnvName = "STOREFRONT_CONFIG_FILE"
	envPrefix         = "STOREFRONT"
)

const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageSQL    = "sql"
)

type storage struct {
	Driver string `mapstructure:"driver"`
	Dir    string `mapstructure:"dir"`
	SQLDB  string `mapstructure:"sql_db"`
}

type topics struct {
	Orders string `mapstructure:"orders"`
}

type tlsFiles struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t tlsFiles) Enabled() bool {
	return t.CA != ""
}

type broker struct {
	SeedBrokers        []string `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string `mapstructure:"schema_registry_urls"`
	Topics             topics   `mapstructure:"topics"`
	TLS                tlsFiles `mapstructure:"tls"`
}

// Enabled reports whether orders go to the broker. Without seed brokers
// orders are only logged.
func (b broker) Enabled() bool {
	return len(b.SeedBrokers) != 0
}

type auth struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type session struct {
	CookieName string        `mapstructure:"cookie_name"`
	MaxAge     time.Duration `mapstructure:"max_age"`
	Secure     bool          `mapstructure:"secure"`
	IdleTTL    time.Duration `mapstructure:"idle_ttl"`
}

type Config struct {
	LogLevel       slog.Level    `mapstructure:"log_level"`
	HTTPServerAddr string        `mapstructure:"http_server_addr"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	Storage        storage       `mapstructure:"storage"`
	Broker         broker        `mapstructure:"broker"`
	Auth           auth          `mapstructure:"auth"`
	Session        session       `mapstructure:"session"`
}

func Load() Config {
	cfg, err := load(getConfigFilepath())
	if err != nil {
		die(err)
	}
	return cfg
}

func load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	err := v.UnmarshalExact(&cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("http_server_addr", ":8080")
	v.SetDefault("request_timeout", 5*time.Second)
	v.SetDefault("storage.driver", StorageFile)
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.sql_db", "")
	v.SetDefault("broker.seed_brokers", []string{})
	v.SetDefault("broker.schema_registry_urls", []string{})
	v.SetDefault("broker.topics.orders", "orders")
	v.SetDefault("broker.tls.ca", "")
	v.SetDefault("broker.tls.cert", "")
	v.SetDefault("broker.tls.key", "")
	v.SetDefault("auth.bcrypt_cost", 10)
	v.SetDefault("session.cookie_name", "sf_session")
	v.SetDefault("session.max_age", 30*24*time.Hour)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.idle_ttl", 2*time.Hour)
}

func (c Config) validate() error {
	var errs []error

	drivers := []string{StorageFile, StorageMemory, StorageSQL}
	if !slices.Contains(drivers, c.Storage.Driver) {
		errs = append(errs, fmt.Errorf(
			"storage.driver: %q is not one of %q", c.Storage.Driver, drivers,
		))
	}
	if c.Storage.Driver == StorageFile && c.Storage.Dir == "" {
		errs = append(errs, errors.New("storage.dir: required for file driver"))
	}
	if c.Storage.Driver == StorageSQL && c.Storage.SQLDB == "" {
		errs = append(errs, errors.New("storage.sql_db: required for sql driver"))
	}

	if c.Broker.Enabled() {
		if len(c.Broker.SchemaRegistryURLs) == 0 {
			errs = append(errs, errors.New("broker.schema_registry_urls: required with seed_brokers"))
		}
		if c.Broker.Topics.Orders == "" {
			errs = append(errs, errors.New("broker.topics.orders: required with seed_brokers"))
		}
	}
	if (c.Broker.TLS.Cert == "") != (c.Broker.TLS.Key == "") {
		errs = append(errs, errors.New("broker.tls: cert and key go together"))
	}

	if c.Session.CookieName == "" {
		errs = append(errs, errors.New("session.cookie_name: required"))
	}

	return errors.Join(errs...)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	cmdLine.ParseErrorsWhitelist.UnknownFlags = true
	arg := cmdLine.String("config", "", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	RequestTimeout=%s

	Storage:
	Driver=%q
	Dir=%q
	SQLDB=%t

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	TLS=%t
	Topics:
		Orders=%q

	Session:
	CookieName=%q
	MaxAge=%s
	Secure=%t
	IdleTTL=%s

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.RequestTimeout,
		c.Storage.Driver,
		c.Storage.Dir,
		c.Storage.SQLDB != "",
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.TLS.Enabled(),
		c.Broker.Topics.Orders,
		c.Session.CookieName,
		c.Session.MaxAge,
		c.Session.Secure,
		c.Session.IdleTTL,
	)
}
