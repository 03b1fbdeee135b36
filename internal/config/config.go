package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Поддерживаемые драйверы базы данных (совпадают с pkg/database)
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config хранит все настройки приложения
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Events    EventsConfig    `mapstructure:"events"`
}

// ServerConfig содержит настройки HTTP сервера
type ServerConfig struct {
	Port         string `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`
	WriteTimeout int    `mapstructure:"write_timeout"`
}

// DatabaseConfig содержит настройки подключения к базе данных.
// Если Driver не задан, используется postgres при заданном DBName и SQLite в памяти иначе.
type DatabaseConfig struct {
	Driver     string `mapstructure:"driver"`
	Host       string `mapstructure:"host"`
	Port       string `mapstructure:"port"`
	User       string `mapstructure:"user"`
	Password   string `mapstructure:"password"`
	DBName     string `mapstructure:"dbname"`
	SSLMode    string `mapstructure:"sslmode"`
	SQLitePath string `mapstructure:"sqlite_path"`
}

// RedisConfig содержит унифицированные настройки подключения к Redis
// Поддерживает режимы: single, sentinel, cluster
type RedisConfig struct {
	// Enabled: Redis нужен только для ограничения частоты запросов
	Enabled bool `mapstructure:"enabled"`

	// Mode: Режим работы Redis ("single", "sentinel", "cluster"). По умолчанию "single".
	Mode string `mapstructure:"mode"`

	// Addrs: Список адресов Redis (хост:порт). Используется для всех режимов.
	Addrs []string `mapstructure:"addrs"`

	// Addr: Адрес для режима 'single', если Addrs пустой.
	Addr string `mapstructure:"addr"`

	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`

	// MasterName: Имя мастер-сервера Redis (только для режима "sentinel")
	MasterName string `mapstructure:"master_name"`

	// MaxRetries: Максимальное количество попыток переподключения (-1 - без ретраев).
	MaxRetries int `mapstructure:"max_retries"`

	// MinRetryBackoff / MaxRetryBackoff: интервалы между попытками в миллисекундах
	MinRetryBackoff int `mapstructure:"min_retry_backoff"`
	MaxRetryBackoff int `mapstructure:"max_retry_backoff"`
}

// RateLimitConfig содержит настройки ограничения частоты запросов к /api
type RateLimitConfig struct {
	MaxRequests int `mapstructure:"max_requests"`
	WindowSec   int `mapstructure:"window_sec"`
}

// EventsConfig содержит настройки публикации событий о вопросах
type EventsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Topic   string `mapstructure:"topic"`
	// KafkaBrokers: если пуст, события публикуются во внутренний канал (gochannel)
	KafkaBrokers []string `mapstructure:"kafka_brokers"`
}

// PostgresConnectionString формирует строку подключения к PostgreSQL
func (d *DatabaseConfig) PostgresConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// PostgresURL формирует URL подключения (нужен lib/pq и migrate)
func (d *DatabaseConfig) PostgresURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Load загружает конфигурацию: .env, затем файл конфигурации, затем переменные окружения
func Load(configPath string) (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := loadDotEnv(envFile); err != nil {
		return nil, err
	}

	vip := viper.New() // Используем новый экземпляр Viper, чтобы избежать глобального состояния

	// 1. Значения по умолчанию
	vip.SetDefault("server.port", "8080")
	vip.SetDefault("server.read_timeout", 10)
	vip.SetDefault("server.write_timeout", 10)
	vip.SetDefault("database.port", "5432")
	vip.SetDefault("database.host", "localhost")
	vip.SetDefault("database.sslmode", "disable")
	vip.SetDefault("redis.mode", "single")
	vip.SetDefault("rate_limit.max_requests", 100)
	vip.SetDefault("rate_limit.window_sec", 60)
	vip.SetDefault("events.enabled", true)
	vip.SetDefault("events.topic", "trivia.questions")

	// 2. Привязываем переменные окружения ЯВНО
	vip.BindEnv("server.port", "SERVER_PORT")
	vip.BindEnv("server.read_timeout", "SERVER_READ_TIMEOUT")
	vip.BindEnv("server.write_timeout", "SERVER_WRITE_TIMEOUT")

	vip.BindEnv("database.driver", "DATABASE_DRIVER")
	vip.BindEnv("database.host", "DATABASE_HOST")
	vip.BindEnv("database.port", "DATABASE_PORT")
	vip.BindEnv("database.user", "DATABASE_USER")
	vip.BindEnv("database.password", "DATABASE_PASSWORD")
	vip.BindEnv("database.dbname", "DATABASE_DBNAME")
	vip.BindEnv("database.sslmode", "DATABASE_SSLMODE")
	vip.BindEnv("database.sqlite_path", "DATABASE_SQLITE_PATH")

	vip.BindEnv("redis.enabled", "REDIS_ENABLED")
	vip.BindEnv("redis.mode", "REDIS_MODE")
	vip.BindEnv("redis.addrs", "REDIS_ADDRS") // Для массива строк
	vip.BindEnv("redis.addr", "REDIS_ADDR")   // Для одиночной строки
	vip.BindEnv("redis.password", "REDIS_PASSWORD")
	vip.BindEnv("redis.db", "REDIS_DB")
	vip.BindEnv("redis.master_name", "REDIS_MASTER_NAME")

	vip.BindEnv("rate_limit.max_requests", "RATE_LIMIT_MAX_REQUESTS")
	vip.BindEnv("rate_limit.window_sec", "RATE_LIMIT_WINDOW_SEC")

	vip.BindEnv("events.enabled", "EVENTS_ENABLED")
	vip.BindEnv("events.topic", "EVENTS_TOPIC")
	vip.BindEnv("events.kafka_brokers", "EVENTS_KAFKA_BROKERS")

	// 3. Файл конфигурации необязателен: все ключи можно задать через окружение
	if configPath != "" {
		vip.SetConfigFile(configPath)
		if err := vip.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
				log.Printf("[Config] Файл конфигурации '%s' не найден, используются переменные окружения/умолчания.", configPath)
			} else {
				log.Printf("[Config] Предупреждение: не удалось прочитать файл конфигурации '%s': %v", configPath, err)
			}
		}
	}

	// 4. Анмаршалим конфигурацию (Viper объединит значения из файла и привязанных env vars)
	var cfg Config
	if err := vip.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Выбор драйвера базы данных
	if err := cfg.Database.resolveDriver(); err != nil {
		return nil, err
	}

	if os.Getenv("GIN_MODE") != "release" {
		log.Printf("--- Загруженные значения конфигурации ---")
		log.Printf("Database Driver: %s", cfg.Database.Driver)
		log.Printf("Database Host: %s", cfg.Database.Host)
		log.Printf("Database Name: %s", cfg.Database.DBName)
		log.Printf("Redis Enabled: %t (mode: %s)", cfg.Redis.Enabled, cfg.Redis.Mode)
		log.Printf("Events Enabled: %t (kafka brokers: %v)", cfg.Events.Enabled, cfg.Events.KafkaBrokers)
		log.Printf("Server Port: %s", cfg.Server.Port)
		log.Printf("-----------------------------------------")
	}

	return &cfg, nil
}

// resolveDriver определяет драйвер и проверяет обязательные параметры
func (d *DatabaseConfig) resolveDriver() error {
	if d.Driver == "" {
		if d.DBName == "" {
			log.Println("[Config] IMPORTANT: имя базы данных не задано, используется SQLite в памяти")
			d.Driver = DriverSQLite
		} else {
			d.Driver = DriverPostgres
		}
	}

	switch d.Driver {
	case DriverPostgres:
		if d.Host == "" || d.DBName == "" || d.User == "" {
			return fmt.Errorf("database configuration (host, dbname, user) is incomplete in config (check DATABASE_HOST, DATABASE_DBNAME, DATABASE_USER env vars)")
		}
	case DriverSQLite:
		// SQLitePath пустой -> база в памяти
	default:
		return fmt.Errorf("unsupported database driver %q", d.Driver)
	}
	return nil
}

// loadDotEnv загружает переменные из .env, если файл существует.
// Уже заданные переменные окружения не перезаписываются.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to stat env file %s: %w", path, err)
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}
