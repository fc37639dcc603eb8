package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	SheetsSourceGoogle   = "google"
	SheetsSourceWorkbook = "xlsx"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Cors             Cors             `mapstructure:",squash"`
	Ledger           Ledger           `mapstructure:",squash"`
	Sheets           Sheets           `mapstructure:",squash"`
	SheetsImportSync SheetsImportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

// Auth guarda o segredo usado pelo serviço de autenticação hospedado para assinar os tokens
type Auth struct {
	Secret string `mapstructure:"auth_jwt_secret"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Ledger struct {
	CacheEnabled bool          `mapstructure:"ledger_cache_enabled"`
	CacheTTL     time.Duration `mapstructure:"ledger_cache_ttl"`
}

type Sheets struct {
	Source                string `mapstructure:"sheets_source"`
	PaymentsSpreadsheetID string `mapstructure:"sheets_payments_spreadsheet_id"`
	ReceiptsSpreadsheetID string `mapstructure:"sheets_receipts_spreadsheet_id"`
	PaymentsRange         string `mapstructure:"sheets_payments_range"`
	ReceiptsRange         string `mapstructure:"sheets_receipts_range"`
	CredentialsJSON       string `mapstructure:"sheets_credentials_json"`
	CredentialsFile       string `mapstructure:"sheets_credentials_file"`
	WorkbookPath          string `mapstructure:"sheets_workbook_path"`
	PaymentsSheet         string `mapstructure:"sheets_payments_sheet"`
	ReceiptsSheet         string `mapstructure:"sheets_receipts_sheet"`
}

type SheetsImportSync struct {
	CronSchedule string `mapstructure:"sheets_import_sync_cron"`
	Enabled      bool   `mapstructure:"sheets_import_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/caixa?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("AUTH_JWT_SECRET", "your_jwt_secret")

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	// Cache da lista de lançamentos, invalidado a cada escrita
	viper.SetDefault("LEDGER_CACHE_ENABLED", true)
	viper.SetDefault("LEDGER_CACHE_TTL", "30s")

	viper.SetDefault("SHEETS_SOURCE", SheetsSourceGoogle)
	viper.SetDefault("SHEETS_PAYMENTS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_RECEIPTS_SPREADSHEET_ID", "")
	viper.SetDefault("SHEETS_PAYMENTS_RANGE", "A:D")
	viper.SetDefault("SHEETS_RECEIPTS_RANGE", "A:C")
	viper.SetDefault("SHEETS_CREDENTIALS_JSON", "")
	viper.SetDefault("SHEETS_CREDENTIALS_FILE", "")
	viper.SetDefault("SHEETS_WORKBOOK_PATH", "")
	viper.SetDefault("SHEETS_PAYMENTS_SHEET", "Pagamentos")
	viper.SetDefault("SHEETS_RECEIPTS_SHEET", "Recebimentos")

	viper.SetDefault("SHEETS_IMPORT_SYNC_CRON", "0 7 * * *") // Todos os dias às 7h da manhã
	viper.SetDefault("SHEETS_IMPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// O .env é opcional, as variáveis podem vir do ambiente
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

	if err := config.Sheets.loadCredentialsFile(); err != nil {
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

// loadCredentialsFile lê as credenciais da conta de serviço quando informadas por arquivo
func (s *Sheets) loadCredentialsFile() error {
	if s.CredentialsJSON != "" || s.CredentialsFile == "" {
		return nil
	}

	content, err := os.ReadFile(s.CredentialsFile)
	if err != nil {
		return fmt.Errorf("erro ao ler credenciais do Google em %s: %w", s.CredentialsFile, err)
	}

	s.CredentialsJSON = string(content)
	return nil
}

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
