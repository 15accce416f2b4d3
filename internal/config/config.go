package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers.
const (
	StoreSQLite   = "sqlite"
	StoreDynamoDB = "dynamodb"
	StoreMemory   = "memory"
)

type Config struct {
	Port   string       `mapstructure:"port"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`

	Store    StoreConfig    `mapstructure:"store"`
	DB       DBConfig       `mapstructure:"db"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`

	Sensors   SensorsConfig   `mapstructure:"sensors"`
	Evaluator EvaluatorConfig `mapstructure:"evaluator"`
	MQTT      MQTTConfig      `mapstructure:"mqtt"`
	LLM       LLMConfig       `mapstructure:"llm"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	IdleTimeout       time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // sqlite | dynamodb | memory
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type DynamoDBConfig struct {
	Table  string `mapstructure:"table"`
	Key    string `mapstructure:"key"`
	Region string `mapstructure:"region"`
}

type SensorsConfig struct {
	Capacity int `mapstructure:"capacity"`
}

type EvaluatorConfig struct {
	Interval time.Duration `mapstructure:"interval"` // 0 disables re-evaluation
}

type MQTTConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Broker   string `mapstructure:"broker"`
	ClientID string `mapstructure:"client_id"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Topic    string `mapstructure:"topic"`
	QoS      byte   `mapstructure:"qos"`
}

type LLMConfig struct {
	APIKey      string        `mapstructure:"api_key"`
	BaseURL     string        `mapstructure:"base_url"`
	Model       string        `mapstructure:"model"`
	Temperature float32       `mapstructure:"temperature"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("store.driver", StoreSQLite)
	v.SetDefault("db.path", "app.db")
	v.SetDefault("dynamodb.table", "food-monitor-signal")
	v.SetDefault("dynamodb.key", "esp32:ledState")
	v.SetDefault("dynamodb.region", "")
	v.SetDefault("sensors.capacity", 500)
	v.SetDefault("evaluator.interval", 5*time.Second)
	v.SetDefault("mqtt.enabled", false)
	v.SetDefault("mqtt.broker", "tcp://localhost:1883")
	v.SetDefault("mqtt.client_id", "food-monitor")
	v.SetDefault("mqtt.username", "")
	v.SetDefault("mqtt.password", "")
	v.SetDefault("mqtt.topic", "sensors/+/telemetry")
	v.SetDefault("mqtt.qos", 1)
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.model", "gpt-4o-mini")
	v.SetDefault("llm.temperature", 0.3)
	v.SetDefault("llm.max_tokens", 800)
	v.SetDefault("llm.timeout", 20*time.Second)
}

// Load reads configs/config.yml (if present) from each of paths, then
// environment variables (LLM_API_KEY overrides llm.api_key, and so on).
// A .env file in the working directory is loaded first when present.
func Load(paths ...string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The provider SDKs read this name; accept it too.
	_ = v.BindEnv("llm.api_key", "LLM_API_KEY", "OPENAI_API_KEY")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreSQLite, StoreDynamoDB, StoreMemory:
	default:
		return fmt.Errorf("unknown store.driver %q (want sqlite, dynamodb or memory)", c.Store.Driver)
	}
	if c.Sensors.Capacity <= 0 {
		return fmt.Errorf("sensors.capacity must be positive, got %d", c.Sensors.Capacity)
	}
	if c.MQTT.Enabled && c.MQTT.Broker == "" {
		return errors.New("mqtt.broker is required when mqtt.enabled is true")
	}
	return nil
}
