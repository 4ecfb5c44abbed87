package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	SalesFeed    SalesFeed    `mapstructure:",squash"`
	SnapshotSync SnapshotSync `mapstructure:",squash"`
	Cors         Cors         `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// SalesFeed é o endpoint externo (webhook do n8n) que devolve o JSON de vendas
type SalesFeed struct {
	URL            string        `mapstructure:"sales_feed_url"`
	RequestTimeout time.Duration `mapstructure:"sales_feed_request_timeout"`
}

// SnapshotSync controla a atualização periódica do snapshot de vendas
type SnapshotSync struct {
	CronSchedule   string `mapstructure:"snapshot_sync_cron"`
	Enabled        bool   `mapstructure:"snapshot_sync_enabled"`
	RefreshOnStart bool   `mapstructure:"snapshot_sync_refresh_on_start"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SALES_FEED_URL", "https://matheusintegrations.app.n8n.cloud/webhook/sales-json")
	viper.SetDefault("SALES_FEED_REQUEST_TIMEOUT", "45s")

	// Defaults para atualização do snapshot
	viper.SetDefault("SNAPSHOT_SYNC_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("SNAPSHOT_SYNC_ENABLED", false)       // Atualização automática desligada
	viper.SetDefault("SNAPSHOT_SYNC_REFRESH_ON_START", true)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:4001")

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

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
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
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
