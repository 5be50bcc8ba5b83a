package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App       App       `mapstructure:",squash"`
	Server    Server    `mapstructure:",squash"`
	Database  Database  `mapstructure:",squash"`
	AdLibrary AdLibrary `mapstructure:",squash"`
	OpenAI    OpenAI    `mapstructure:",squash"`
	Fetch     Fetch     `mapstructure:",squash"`
	FetchSync FetchSync `mapstructure:",squash"`
	BriefSync BriefSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// AdLibrary configures the Meta Ad Library client. An empty AccessToken
// switches every fetch to the synthetic sample source.
type AdLibrary struct {
	BaseURL     string `mapstructure:"ad_library_base_url"`
	Version     string `mapstructure:"ad_library_version"`
	URL         string `mapstructure:"-"`
	AccessToken string `mapstructure:"meta_access_token"`
	Country     string `mapstructure:"ad_library_country"`
	PageLimit   int    `mapstructure:"ad_library_page_limit"`
	MaxPages    int    `mapstructure:"ad_library_max_pages"`
}

type OpenAI struct {
	APIKey         string `mapstructure:"openai_api_key"`
	Model          string `mapstructure:"openai_model"`
	TimeoutSeconds int    `mapstructure:"openai_timeout_seconds"`
}

type Fetch struct {
	DaysBack               int `mapstructure:"fetch_days_back"`
	RequestDelaySeconds    int `mapstructure:"fetch_request_delay_seconds"`
	SampleAdsPerCompetitor int `mapstructure:"fetch_sample_ads_per_competitor"`
	InsightSampleAds       int `mapstructure:"insight_sample_ads"`
	TopPerformerLimit      int `mapstructure:"top_performer_default_limit"`
}

type FetchSync struct {
	CronSchedule string `mapstructure:"fetch_sync_cron"`
	Enabled      bool   `mapstructure:"fetch_sync_enabled"`
}

type BriefSync struct {
	CronSchedule string `mapstructure:"brief_sync_cron"`
	Enabled      bool   `mapstructure:"brief_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/warroom?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AD_LIBRARY_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("AD_LIBRARY_VERSION", "v21.0")
	viper.SetDefault("AD_LIBRARY_COUNTRY", "IN")
	viper.SetDefault("AD_LIBRARY_PAGE_LIMIT", 50)
	viper.SetDefault("AD_LIBRARY_MAX_PAGES", 4)
	viper.SetDefault("META_ACCESS_TOKEN", "") // empty means sample data only

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_TIMEOUT_SECONDS", 30)

	viper.SetDefault("FETCH_DAYS_BACK", 90)
	viper.SetDefault("FETCH_REQUEST_DELAY_SECONDS", 1) // courtesy delay between page fetches
	viper.SetDefault("FETCH_SAMPLE_ADS_PER_COMPETITOR", 15)
	viper.SetDefault("INSIGHT_SAMPLE_ADS", 5)
	viper.SetDefault("TOP_PERFORMER_DEFAULT_LIMIT", 20)

	viper.SetDefault("FETCH_SYNC_CRON", "0 3 * * *")
	viper.SetDefault("FETCH_SYNC_ENABLED", false)
	viper.SetDefault("BRIEF_SYNC_CRON", "0 7 * * 1")
	viper.SetDefault("BRIEF_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("viper could not read .env, relying on godotenv/env vars: ", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.AdLibrary.URL = fmt.Sprintf("%s/%s", config.AdLibrary.BaseURL, config.AdLibrary.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("loaded .env from ", location)
			return
		}
	}

	logrus.Info("no .env file found, using process environment only")
}
