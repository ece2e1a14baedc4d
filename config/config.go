package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Invoice escrow specifics
	OpenAI         OpenAIConfig
	Chain          ChainConfig
	GoogleCalendar GoogleCalendarConfig
	Extraction     ExtractionConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig configures the field extraction client.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

// ChainConfig configures the escrow ledger adapter.
type ChainConfig struct {
	RPCURL          string
	ChainID         int64
	ContractAddress string
	PrivateKey      string
	Timezone        string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// ExtractionConfig throttles the LLM-backed endpoints.
type ExtractionConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	// .env is optional; real deployments inject environment directly.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Chain
	cfg.Chain.RPCURL = viper.GetString("chain.rpc_url")
	cfg.Chain.ChainID = viper.GetInt64("chain.chain_id")
	cfg.Chain.ContractAddress = viper.GetString("chain.contract_address")
	cfg.Chain.PrivateKey = viper.GetString("chain.private_key")
	cfg.Chain.Timezone = viper.GetString("chain.timezone")
	if key := viper.GetString("chain_private_key"); key != "" {
		cfg.Chain.PrivateKey = key
	}

	// Google Calendar (optional deadline reminders)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Extraction rate limit
	cfg.Extraction.RateLimitPerMin = viper.GetInt("extraction.rate_limit_per_min")

	if cfg.OpenAI.APIKey == "" {
		return nil, fmt.Errorf("openai.api_key is required - set OPENAI_API_KEY or add it to config.yaml")
	}
	if cfg.Chain.RPCURL == "" {
		return nil, fmt.Errorf("chain.rpc_url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("openai.model", "gpt-4o")
	viper.SetDefault("chain.chain_id", 2552)
	viper.SetDefault("chain.rpc_url", "https://rpc1-horizon.bahamut.io")
	viper.SetDefault("chain.timezone", "UTC")
	viper.SetDefault("extraction.rate_limit_per_min", 30)
}
