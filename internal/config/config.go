package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr     string `env:"SERVER_ADDRESS" envDefault:"localhost:3000"`
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	Environment    string `env:"APP_ENV" envDefault:"development"`
	BackendAddr    string `env:"BACKEND_ADDRESS" envDefault:""`
	PriceAddr      string `env:"PRICE_ADDRESS" envDefault:"https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"`
	DemoMode       bool   `env:"DEMO_MODE" envDefault:"false"`
	RequestTimeout int    `env:"REQUEST_TIMEOUT" envDefault:"15"`
}

// Backend origins selected by APP_ENV when BACKEND_ADDRESS is not set explicitly.
const (
	ProductionBackendAddr  = "https://dev1003-p2p-crypto-lending-backend.onrender.com"
	DevelopmentBackendAddr = "http://localhost:8080"
)

// ServerConfig holds the listen settings of the frontend itself
type ServerConfig struct {
	ListenAddr string
	LogLevel   string
}

// BackendConfig holds settings for talking to the lending backend
type BackendConfig struct {
	BackendAddr    string
	PriceAddr      string
	RequestTimeout time.Duration
	DemoMode       bool
}

// Config is the full service configuration
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server      = pflag.StringP("server", "a", args.ListenAddr, "Frontend listen address in a form host:port.")
		logLevel    = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		environment = pflag.StringP("env", "e", args.Environment, "Build mode: production or development.")
		backend     = pflag.StringP("backend", "b", args.BackendAddr, "Lending backend origin.")
		price       = pflag.StringP("price", "p", args.PriceAddr, "Bitcoin price feed URL.")
		demo        = pflag.BoolP("demo", "m", args.DemoMode, "Serve placeholder data when list fetches fail.")
		timeout     = pflag.IntP("timeout", "t", args.RequestTimeout, "Backend request timeout, seconds.")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr: *server,
			LogLevel:   *logLevel,
		},
		Backend: BackendConfig{
			BackendAddr:    resolveBackendAddr(*backend, *environment),
			PriceAddr:      *price,
			RequestTimeout: time.Duration(*timeout) * time.Second,
			DemoMode:       *demo,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr: "localhost:3000",
			LogLevel:   "info",
		},
		Backend: BackendConfig{
			BackendAddr:    DevelopmentBackendAddr,
			RequestTimeout: 15 * time.Second,
		},
	}
}

// resolveBackendAddr - an explicit origin wins, otherwise the build mode picks one.
func resolveBackendAddr(addr string, environment string) string {
	if addr != "" {
		return addr
	}
	if environment == "production" {
		return ProductionBackendAddr
	}
	return DevelopmentBackendAddr
}
