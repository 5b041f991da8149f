package config

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spf13/viper"
)

// Config хранит конфигурацию сервера
type Config struct {
	ServerAddress    string `json:"server_address"`
	BaseURL          string `json:"base_url"`
	DatabaseDSN      string `json:"database_dsn"`
	PgMigrationsPath string `json:"pg_migrations_path"`
	JWTSecret        string `json:"jwt_secret"`
	NotFoundURL      string `json:"not_found_url"`
	ExpiredURL       string `json:"expired_url"`
	ErrorURL         string `json:"error_url"`
	TitleFetch       bool   `json:"title_fetch"`
	EnableHTTPS      bool   `json:"enable_https"`
	TLSCertPath      string `json:"tls_cert_path"`
	TLSKeyPath       string `json:"tls_key_path"`
}

// NewConfig инициализирует конфигурацию на основе аргументов командной строки
func NewConfig() *Config {

	viper.SetDefault("SERVER_ADDRESS", "localhost:8080") // Значения по умолчанию
	viper.SetDefault("BASE_URL", "http://localhost:8080")
	viper.SetDefault("DATABASE_DSN", "")
	viper.SetDefault("PG_MIGRATIONS_PATH", "internal/migrations")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("NOT_FOUND_URL", "/404")
	viper.SetDefault("EXPIRED_URL", "/expired")
	viper.SetDefault("ERROR_URL", "/error")
	viper.SetDefault("TITLE_FETCH", true)
	viper.SetDefault("ENABLE_HTTPS", false)
	viper.SetDefault("TLS_CERT_PATH", "cert.pem")
	viper.SetDefault("TLS_KEY_PATH", "key.pem")

	viper.AutomaticEnv()

	// Читаем .env, если есть (не переопределяет переменные окружения!)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // Ошибку игнорируем, если файла нет

	// Определяем флаги, но НЕ задаем в них значения по умолчанию
	serverAddress := flag.String("a", "", "server address")
	baseURL := flag.String("b", "", "base URL")
	databaseDSN := flag.String("d", "", "PostgreSQL DSN")
	jwtSecret := flag.String("j", "", "JWT signing secret")
	enableHTTPS := flag.Bool("s", false, "enable HTTPS")
	tlsCertPath := flag.String("cert", "", "path to TLS certificate")
	tlsKeyPath := flag.String("key", "", "path to TLS key")
	configPath := flag.String("c", "", "path to JSON config file")
	flag.StringVar(configPath, "config", "", "path to JSON config file")

	flag.Parse()

	// Загружаем JSON-конфигурацию (если указана)
	if *configPath == "" {
		*configPath = os.Getenv("CONFIG")
	}

	type rawJSON Config
	jsonCfg := &rawJSON{}
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			log.Printf("Не удалось прочитать JSON-файл конфигурации %q: %v", *configPath, err)
		} else if err := json.Unmarshal(data, jsonCfg); err != nil {
			log.Printf("Ошибка разбора JSON-файла конфигурации: %v", err)
		}
	}

	cfg := &Config{
		ServerAddress:    viper.GetString("SERVER_ADDRESS"),
		BaseURL:          viper.GetString("BASE_URL"),
		DatabaseDSN:      viper.GetString("DATABASE_DSN"),
		PgMigrationsPath: viper.GetString("PG_MIGRATIONS_PATH"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		NotFoundURL:      viper.GetString("NOT_FOUND_URL"),
		ExpiredURL:       viper.GetString("EXPIRED_URL"),
		ErrorURL:         viper.GetString("ERROR_URL"),
		TitleFetch:       viper.GetBool("TITLE_FETCH"),
		EnableHTTPS:      viper.GetBool("ENABLE_HTTPS"),
		TLSCertPath:      viper.GetString("TLS_CERT_PATH"),
		TLSKeyPath:       viper.GetString("TLS_KEY_PATH"),
	}

	// Значения из JSON-файла применяются только там, где нет ни env, ни флага
	applyJSON := func(jsonVal string, target *string) {
		if *target == "" && jsonVal != "" {
			*target = jsonVal
		}
	}
	applyJSON(jsonCfg.DatabaseDSN, &cfg.DatabaseDSN)
	applyJSON(jsonCfg.JWTSecret, &cfg.JWTSecret)
	applyJSON(jsonCfg.NotFoundURL, &cfg.NotFoundURL)
	applyJSON(jsonCfg.ExpiredURL, &cfg.ExpiredURL)
	applyJSON(jsonCfg.ErrorURL, &cfg.ErrorURL)

	// Если флаг передан, но переменной окружения нет — используем флаг
	if *serverAddress != "" {
		cfg.ServerAddress = *serverAddress
	}
	if *baseURL != "" {
		cfg.BaseURL = *baseURL
	}
	if *databaseDSN != "" {
		cfg.DatabaseDSN = *databaseDSN
		os.Setenv("DATABASE_DSN", cfg.DatabaseDSN)
	}
	if *jwtSecret != "" {
		cfg.JWTSecret = *jwtSecret
	}

	// Включаем TLS
	if *enableHTTPS {
		cfg.EnableHTTPS = true
	}
	if *tlsCertPath != "" {
		cfg.TLSCertPath = *tlsCertPath
	}
	if *tlsKeyPath != "" {
		cfg.TLSKeyPath = *tlsKeyPath
	}

	log.Printf("Инициализация конфигурации: ServerAddress=%s", cfg.ServerAddress)
	log.Printf("Инициализация конфигурации: BaseURL=%s", cfg.BaseURL)
	log.Printf("Инициализация конфигурации: PgMigrationsPath=%s", cfg.PgMigrationsPath)
	log.Printf("Инициализация конфигурации: NotFoundURL=%s ExpiredURL=%s ErrorURL=%s",
		cfg.NotFoundURL, cfg.ExpiredURL, cfg.ErrorURL)
	log.Printf("Инициализация конфигурации: EnableHTTPS=%v", cfg.EnableHTTPS)

	// Проверка корректности конфигурации
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Ошибка конфигурации: %v\n", err)
	}

	return cfg
}

// Validate проверяет корректность конфигурации
func (cfg *Config) Validate() error {
	if cfg.ServerAddress == "" {
		return fmt.Errorf("адрес сервера не может быть пустым")
	}
	if cfg.BaseURL == "" {
		return fmt.Errorf("базовый URL не может быть пустым")
	}
	if cfg.JWTSecret == "" {
		return fmt.Errorf("секрет JWT не может быть пустым")
	}
	if cfg.NotFoundURL == "" || cfg.ExpiredURL == "" || cfg.ErrorURL == "" {
		return fmt.Errorf("fallback-адреса редиректов не могут быть пустыми")
	}
	return nil
}
