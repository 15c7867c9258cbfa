package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	Storage    string     `yaml:"storage" env:"STORAGE" env-default:"postgres"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Postgres   Postgres   `yaml:"postgres"`
	JWT        JWT        `yaml:"jwt"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env-default:"localhost:8080"`
	Timeout     time.Duration `yaml:"timeout" env-default:"5s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Postgres struct {
	Host     string `yaml:"host" env-default:"localhost"`
	Port     string `yaml:"port" env-default:"5432"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
}

type JWT struct {
	SecretKey string        `yaml:"secret_key" env:"JWT_SECRET_KEY"`
	Issuer    string        `yaml:"issuer"`
	Audience  string        `yaml:"audience"`
	TokenTTL  time.Duration `yaml:"token_ttl" env-default:"30m"`
}

// MustLoad reads the config file pointed to by CONFIG_PATH and aborts the
// process on any problem. A missing signing key is a startup failure, not
// something to discover on the first login request.
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("Config file not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("Can not read config file %s", err)
	}

	if cfg.JWT.SecretKey == "" {
		log.Fatal("jwt secret key is not set")
	}

	return &cfg
}
