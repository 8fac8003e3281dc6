package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Logger LoggerConfig
	DB     DBConfig
	Redis  RedisConfig
	Quiz   QuizConfig
	Auth   AuthConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type DBConfig struct {
	// Path is the sqlite database file holding the credential table.
	Path string
	// MigrationsDir holds the schema migration files.
	MigrationsDir string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type QuizConfig struct {
	// FilePath is the xlsx spreadsheet the question bank is loaded from.
	FilePath string
	// SampleSize is the maximum number of questions drawn per attempt.
	SampleSize int
	// SessionTTL bounds how long an unfinished attempt survives in the store.
	SessionTTL time.Duration
}

type AuthConfig struct {
	// SecretKey signs session tokens; must be at least 32 bytes.
	SecretKey string
	TokenTTL  time.Duration
	// CookieSecure marks the auth cookie Secure; enable behind TLS.
	CookieSecure bool
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Add config paths based on environment
	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../config")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./config")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("db.path", "quizsheet.db")
	viper.SetDefault("db.migrations_dir", "database/migrations")
	viper.SetDefault("quiz.file_path", "quiz.xlsx")
	viper.SetDefault("quiz.sample_size", 5)
	viper.SetDefault("quiz.session_ttl", 120)
	viper.SetDefault("auth.token_ttl", 1440)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		DB: DBConfig{
			Path:          viper.GetString("db.path"),
			MigrationsDir: viper.GetString("db.migrations_dir"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Quiz: QuizConfig{
			FilePath:   viper.GetString("quiz.file_path"),
			SampleSize: viper.GetInt("quiz.sample_size"),
			SessionTTL: viper.GetDuration("quiz.session_ttl") * time.Minute,
		},
		Auth: AuthConfig{
			SecretKey:    viper.GetString("auth.secret_key"),
			TokenTTL:     viper.GetDuration("auth.token_ttl") * time.Minute,
			CookieSecure: viper.GetBool("auth.cookie_secure"),
		},
	}

	// Override with environment variables if set
	if dbPath := os.Getenv("DB_PATH"); dbPath != "" {
		config.DB.Path = dbPath
	}
	if quizFile := os.Getenv("QUIZ_FILE"); quizFile != "" {
		config.Quiz.FilePath = quizFile
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if secretKey := os.Getenv("AUTH_SECRET_KEY"); secretKey != "" {
		config.Auth.SecretKey = secretKey
	}

	return config, nil
}

// SQLiteDSN returns the DSN for the credential database.
func (c *Config) SQLiteDSN() string {
	return c.DB.Path
}
