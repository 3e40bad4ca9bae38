package config

import (
	"flag"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultHost        = "0.0.0.0"
	defaultPort        = 5000
	defaultDatabaseDSN = "inventory.db"
)

type Config struct {
	Host        string `env:"HOST"`
	DatabaseDSN string `env:"DATABASE_URI"`
	Debug       bool   `env:"DEBUG"`

	// Port последним: при невалидном PORT env.Parse прерывается на нём,
	// остальные поля уже заполнены
	Port int `env:"PORT"`
}

// NewConfig собирает конфиг сервера: .env, переменные окружения, флаги, значения по умолчанию.
func NewConfig() *Config {
	cfg := load(".env")

	// флаги перекрывают значения из env
	flag.StringVar(&cfg.Host, "host", cfg.Host, "адрес, на котором слушает сервер")
	flag.IntVar(&cfg.Port, "p", cfg.Port, "порт HTTP-сервера")
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД (путь к файлу SQLite или DSN PostgreSQL)")
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "режим отладки (development-логгер)")

	flag.Parse()

	cfg.applyDefaults()
	return cfg
}

// FromEnv собирает конфиг без глобального flag.CommandLine (для утилит со своими флагами).
func FromEnv(envFile string) *Config {
	cfg := load(envFile)
	cfg.applyDefaults()
	return cfg
}

// Addr возвращает адрес вида host:port для http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func load(envFile string) *Config {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := &Config{}
	_ = env.Parse(cfg)
	return cfg
}

func (c *Config) applyDefaults() {
	c.Host = strings.TrimSpace(c.Host)
	if c.Host == "" {
		c.Host = defaultHost
	}
	if c.Port < 1 || c.Port > 65535 {
		c.Port = defaultPort
	}
	c.DatabaseDSN = strings.TrimSpace(c.DatabaseDSN)
	if c.DatabaseDSN == "" {
		c.DatabaseDSN = defaultDatabaseDSN
	}
}
