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
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	Auth                Auth                `mapstructure:",squash"`
	Quoting             Quoting             `mapstructure:",squash"`
	Spreadsheet         Spreadsheet         `mapstructure:",squash"`
	Upload              Upload              `mapstructure:",squash"`
	TableValidationSync TableValidationSync `mapstructure:",squash"`
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

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Quoting controla o motor de cotação multi-fonte
type Quoting struct {
	// Timeout por fonte, em segundos; uma fonte lenta não derruba a cotação
	SourceTimeoutSeconds int `mapstructure:"quoting_source_timeout_seconds"`
	// TTL do cache de cotações, em minutos (escopo de sessão)
	CacheTTLMinutes int `mapstructure:"quoting_cache_ttl_minutes"`
	// Em modo estrito, faixas de peso ambíguas viram erro em vez de
	// resolverem pelo primeiro match
	StrictTierMatch bool `mapstructure:"quoting_strict_tier_match"`
}

type Spreadsheet struct {
	// Timeout do download de planilhas remotas, em segundos
	FetchTimeoutSeconds int `mapstructure:"spreadsheet_fetch_timeout_seconds"`
}

type Upload struct {
	// Diretório onde ficam os arquivos tabulares enviados pela operação
	Dir string `mapstructure:"upload_dir"`
}

type TableValidationSync struct {
	CronSchedule      string `mapstructure:"table_validation_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"table_validation_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"table_validation_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/freight")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("QUOTING_SOURCE_TIMEOUT_SECONDS", 4) // segundos por fonte
	viper.SetDefault("QUOTING_CACHE_TTL_MINUTES", 10)     // sessão de navegação
	viper.SetDefault("QUOTING_STRICT_TIER_MATCH", false)  // primeiro match vence

	viper.SetDefault("SPREADSHEET_FETCH_TIMEOUT_SECONDS", 30)

	viper.SetDefault("UPLOAD_DIR", "./uploads")

	// Defaults para revalidação periódica das tabelas de preço
	viper.SetDefault("TABLE_VALIDATION_SYNC_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("TABLE_VALIDATION_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("TABLE_VALIDATION_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
