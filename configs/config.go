package configs

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kkyr/fig"
	"go.uber.org/zap"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	StorageLocal = "local"
	StorageS3    = "s3"
)

type DB struct {
	Driver             string `default:"sqlite"`
	Path               string `default:"brewlog.db"`
	Host               string
	Port               int    `default:"5432"`
	User               string `default:"postgres"`
	Password           string
	Database           string `default:"postgres"`
	MaxIdleConnections int    `default:"10"`
	MaxOpenConnections int    `default:"10"`
}

type Server struct {
	Port int `default:"8080"`
}

type Images struct {
	Storage        string `default:"local"`
	Dir            string `default:"public/images"`
	MaxUploadBytes int64  `default:"5242880"`
	Bucket         string
	Region         string
	BaseURL        string
}

type Integrations struct {
	Lookup []string `default:"web_product"`
}

type Config struct {
	DB           DB
	Server       Server
	Images       Images
	Integrations Integrations
	Auth         Auth
}

type Auth struct {
	SecretKey string
	Audience  string
}

const envPrefix = "BREWLOG" // env prefix for env vars

var ErrConfiguration = errors.New("configuration error")

func GetConfig(configFileName string, logger *zap.Logger) (*Config, error) {
	config := Config{}
	homeDir, _ := os.UserHomeDir()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("could not load .env file", zap.Error(err))
	}

	logger.Info("Loading config", zap.String("file", configFileName))

	err := fig.Load(&config, fig.File(configFileName), fig.Dirs(".", homeDir), fig.UseEnv(envPrefix))
	if err != nil {
		if strings.Contains(err.Error(), "file not found") {
			logger.Warn("Could not find config file", zap.String("file", configFileName))

			err = fig.Load(&config, fig.IgnoreFile(), fig.UseEnv(envPrefix))
			if err != nil {
				return nil, err
			}
		} else {
			return nil, err
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) validate() error {
	var problems []string

	switch c.DB.Driver {
	case DriverSQLite:
		if c.DB.Path == "" {
			problems = append(problems, "DB.Path: required for sqlite")
		}
	case DriverPostgres:
		if c.DB.Host == "" {
			problems = append(problems, "DB.Host: required for postgres")
		}

		if c.DB.Password == "" {
			problems = append(problems, "DB.Password: required for postgres")
		}
	default:
		problems = append(problems, fmt.Sprintf("DB.Driver: unsupported driver %q", c.DB.Driver))
	}

	switch c.Images.Storage {
	case StorageLocal:
	case StorageS3:
		if c.Images.Bucket == "" {
			problems = append(problems, "Images.Bucket: required for s3")
		}
	default:
		problems = append(problems, fmt.Sprintf("Images.Storage: unsupported storage %q", c.Images.Storage))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfiguration, strings.Join(problems, ", "))
	}

	return nil
}
