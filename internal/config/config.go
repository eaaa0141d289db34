package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	ServiceName    = "AscendoreCRM"
	ServiceVersion = "0.1.0"
)

type Config struct {
	App                App                `mapstructure:",squash"`
	Server             Server             `mapstructure:",squash"`
	Database           Database           `mapstructure:",squash"`
	Redis              Redis              `mapstructure:",squash"`
	LLM                LLM                `mapstructure:",squash"`
	Render             Render             `mapstructure:",squash"`
	Auth               Auth               `mapstructure:",squash"`
	RateLimit          RateLimit          `mapstructure:",squash"`
	CampaignProgress   CampaignProgress   `mapstructure:",squash"`
	LeadScoringSync    LeadScoringSync    `mapstructure:",squash"`
	DashboardCacheTTL  time.Duration      `mapstructure:"dashboard_cache_ttl"`
	SecretKey          string             `mapstructure:"secret_key"`
	CorsAllowedOrigins []string           `mapstructure:"cors_origin"`
	Migrations         Migrations         `mapstructure:",squash"`
}

type App struct {
	LogLevel   string `mapstructure:"log_level"`
	APIVersion string `mapstructure:"api_version"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN             string        `mapstructure:"-"`
	Driver          string        `mapstructure:"database_driver"`
	Password        string        `mapstructure:"database_password"`
	URL             string        `mapstructure:"database_url"`
	User            string        `mapstructure:"database_user"`
	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Migrations struct {
	RunOnStartup bool `mapstructure:"migrations_run_on_startup"`
}

type Redis struct {
	Addr     string `mapstructure:"redis_addr"`
	Password string `mapstructure:"redis_password"`
	DB       int    `mapstructure:"redis_db"`
}

// LLM configura o provedor de linguagem usado nas funcionalidades de IA
type LLM struct {
	BaseURL   string        `mapstructure:"anthropic_base_url"`
	APIKey    string        `mapstructure:"anthropic_api_key"`
	Model     string        `mapstructure:"anthropic_model"`
	Version   string        `mapstructure:"anthropic_version"`
	Timeout   time.Duration `mapstructure:"anthropic_timeout"`
	MaxTokens int           `mapstructure:"anthropic_max_tokens"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Auth struct {
	TokenTTL time.Duration `mapstructure:"auth_token_ttl"`
}

type RateLimit struct {
	AIRequestsPerMinute int `mapstructure:"ai_requests_per_minute"`
	AIBurst             int `mapstructure:"ai_burst"`
}

type CampaignProgress struct {
	CronSchedule string `mapstructure:"campaign_progress_cron"`
	Enabled      bool   `mapstructure:"campaign_progress_sync_enabled"`
}

type LeadScoringSync struct {
	CronSchedule        string `mapstructure:"lead_scoring_sync_cron"`
	StaleAfterDays      int    `mapstructure:"lead_scoring_sync_stale_after_days"`
	BatchSize           int    `mapstructure:"lead_scoring_sync_batch_size"`
	RequestDelaySeconds int    `mapstructure:"lead_scoring_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"lead_scoring_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"lead_scoring_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("API_VERSION", "v1")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/crm?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("MIGRATIONS_RUN_ON_STARTUP", false)

	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	viper.SetDefault("ANTHROPIC_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("ANTHROPIC_API_KEY", "")
	viper.SetDefault("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022")
	viper.SetDefault("ANTHROPIC_VERSION", "2023-06-01")
	viper.SetDefault("ANTHROPIC_TIMEOUT", "60s")
	viper.SetDefault("ANTHROPIC_MAX_TOKENS", 1024)

	viper.SetDefault("SECRET_KEY", defaultSecretKey)
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("CORS_ORIGIN", "http://localhost:5173,http://localhost:5174,http://localhost:5175,http://localhost:3000,http://127.0.0.1:5173")

	viper.SetDefault("AI_REQUESTS_PER_MINUTE", 20) // por usuário
	viper.SetDefault("AI_BURST", 5)

	viper.SetDefault("DASHBOARD_CACHE_TTL", "60s")

	viper.SetDefault("CAMPAIGN_PROGRESS_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("CAMPAIGN_PROGRESS_SYNC_ENABLED", false)

	viper.SetDefault("LEAD_SCORING_SYNC_CRON", "0 3 * * *") // Todos os dias às 3h da manhã
	viper.SetDefault("LEAD_SCORING_SYNC_STALE_AFTER_DAYS", 30)
	viper.SetDefault("LEAD_SCORING_SYNC_BATCH_SIZE", 50)
	viper.SetDefault("LEAD_SCORING_SYNC_REQUEST_DELAY_SECONDS", 2)
	viper.SetDefault("LEAD_SCORING_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("LEAD_SCORING_SYNC_ENABLED", false)

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
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.normalize()

	return config, nil
}

// normalize preenche os campos derivados e corrige valores inválidos
func (c *Config) normalize() {
	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	origins := make([]string, 0, len(c.CorsAllowedOrigins))
	for _, origin := range c.CorsAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CorsAllowedOrigins = origins

	if c.App.APIVersion == "" {
		c.App.APIVersion = "v1"
	}
	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = 24 * time.Hour
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = 1024
	}
	if c.LeadScoringSync.MaxConcurrentJobs <= 0 {
		c.LeadScoringSync.MaxConcurrentJobs = 1
	}
	if c.LeadScoringSync.BatchSize <= 0 {
		c.LeadScoringSync.BatchSize = 50
	}
}

// valor de fábrica do SECRET_KEY; nunca deve assinar tokens em produção
const defaultSecretKey = "your_secret_key"

// secretBinding liga um secret file do Render a um campo da configuração
type secretBinding struct {
	name   string
	target func(c *Config) *string
	// missing indica que o valor atual ainda precisa vir do Render
	missing func(current string) bool
}

var secretBindings = []secretBinding{
	{
		name:    "anthropic_api_key",
		target:  func(c *Config) *string { return &c.LLM.APIKey },
		missing: func(current string) bool { return current == "" },
	},
	{
		name:    "secret_key",
		target:  func(c *Config) *string { return &c.SecretKey },
		missing: func(current string) bool { return current == "" || current == defaultSecretKey },
	},
}

// ApplySecrets completa com os secret files do Render os valores que o ambiente não definiu
func (c *Config) ApplySecrets(ctx context.Context, storage SecretStorage) error {
	if c.Render.ServiceID == "" {
		return nil
	}

	pending := make([]secretBinding, 0, len(secretBindings))
	for _, binding := range secretBindings {
		if binding.missing(*binding.target(c)) {
			pending = append(pending, binding)
		}
	}
	if len(pending) == 0 {
		return nil
	}

	secretsByName, err := storage.ListSecrets(ctx, c.Render.ServiceID)
	if err != nil {
		return err
	}

	for _, binding := range pending {
		value, ok := secretsByName[binding.name]
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		*binding.target(c) = strings.TrimSpace(value)
		logrus.WithField("secret", binding.name).Info("Valor carregado dos secrets do Render")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
