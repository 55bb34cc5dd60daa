package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type EscrowConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	EscrowDB     `yaml:"escrow_db"`
	LogConfig    `yaml:"log_config"`
	KafkaService `yaml:"kafka-service"`
	BlobStore    `yaml:"blob_store"`
	Auth         `yaml:"auth"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type EscrowDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"transaction-events"`
}

type BlobStore struct {
	Path          string `yaml:"path" env-default:"escrow-files.db"`
	PublicBaseURL string `yaml:"public_base_url"`
}

type Auth struct {
	JWTSecret string `yaml:"jwt_secret" env:"ESCROW_JWT_SECRET"`
}

func MustLoad() *EscrowConfig {

	// Processing env config variable and file
	configPath := os.Getenv("ESCROW_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("ESCROW_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg EscrowConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
