package utils

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Storage  StorageConfig
	NATS     NATSConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// StorageConfig selects where uploaded media lands. Driver is "local" or "s3".
type StorageConfig struct {
	Driver          string
	BaseDir         string
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UsePathStyle    bool
}

// NATSConfig is optional; with an empty URL events are only logged.
type NATSConfig struct {
	URL            string
	Stream         string
	CreatedSubject string
	EncodedSubject string
	Durable        string
}

type UploadConfig struct {
	MaxMemoryMB int64
}

func (c NATSConfig) Enabled() bool {
	return c.URL != ""
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "video-catalog")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("STORAGE_DRIVER", "local")
	viper.SetDefault("STORAGE_BASE_DIR", "storage/")
	viper.SetDefault("S3_REGION", "us-east-1")
	viper.SetDefault("NATS_STREAM", "VIDEOS")
	viper.SetDefault("NATS_CREATED_SUBJECT", "videos.created")
	viper.SetDefault("NATS_ENCODED_SUBJECT", "videos.encoded")
	viper.SetDefault("NATS_DURABLE", "video-catalog-encoded")
	viper.SetDefault("UPLOAD_MAX_MEMORY_MB", 32)

	// .env is optional, the environment alone is enough in containers
	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Storage: StorageConfig{
			Driver:          viper.GetString("STORAGE_DRIVER"),
			BaseDir:         viper.GetString("STORAGE_BASE_DIR"),
			Bucket:          viper.GetString("S3_BUCKET"),
			Region:          viper.GetString("S3_REGION"),
			Endpoint:        viper.GetString("S3_ENDPOINT"),
			AccessKeyID:     viper.GetString("S3_ACCESS_KEY_ID"),
			SecretAccessKey: viper.GetString("S3_SECRET_ACCESS_KEY"),
			UsePathStyle:    viper.GetBool("S3_USE_PATH_STYLE"),
		},
		NATS: NATSConfig{
			URL:            viper.GetString("NATS_URL"),
			Stream:         viper.GetString("NATS_STREAM"),
			CreatedSubject: viper.GetString("NATS_CREATED_SUBJECT"),
			EncodedSubject: viper.GetString("NATS_ENCODED_SUBJECT"),
			Durable:        viper.GetString("NATS_DURABLE"),
		},
		Upload: UploadConfig{
			MaxMemoryMB: viper.GetInt64("UPLOAD_MAX_MEMORY_MB"),
		},
	}

	return config, nil
}
