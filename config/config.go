package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	App        AppConfig
	DB         DBConfig
	Redis      RedisConfig
	Mongo      MongoConfig
	Transcribe TranscribeConfig
}

type AppConfig struct {
	Env string
}

// DBConfig selects and locates the relational store. For sqlite, Path is the
// database file; a path that does not exist yet gets an empty schema created
// at startup.
type DBConfig struct {
	Type     string
	Path     string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type MongoConfig struct {
	URI          string
	ChatDatabase string
}

type TranscribeConfig struct {
	Queue string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("DB_TYPE", "sqlite")
	viper.SetDefault("DB_PATH", "medops.db")
	viper.SetDefault("TRANSCRIBE_QUEUE", "transcribe:jobs")

	// A missing .env is fine; the environment alone can carry the config.
	_ = viper.ReadInConfig()

	config := &Config{
		App: AppConfig{
			Env: viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Type:     viper.GetString("DB_TYPE"),
			Path:     viper.GetString("DB_PATH"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Mongo: MongoConfig{
			URI:          viper.GetString("MONGO_URI"),
			ChatDatabase: viper.GetString("MONGO_CHAT_DATABASE_NAME"),
		},
		Transcribe: TranscribeConfig{
			Queue: viper.GetString("TRANSCRIBE_QUEUE"),
		},
	}

	return config, nil
}
