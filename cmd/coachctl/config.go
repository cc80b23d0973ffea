package main

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the CLI settings, loaded from a YAML file and/or environment
type Config struct {
	BaseURL     string        `yaml:"base_url" env:"COACHDESK_BASE_URL" env-default:"https://api.coachdesk.app"`
	Email       string        `yaml:"email" env:"COACHDESK_EMAIL"`
	Password    string        `yaml:"password" env:"COACHDESK_PASSWORD"`
	SessionFile string        `yaml:"session_file" env:"COACHDESK_SESSION_FILE" env-default:".coachdesk_session.json"`
	Timeout     time.Duration `yaml:"timeout" env:"COACHDESK_TIMEOUT" env-default:"30s"`
	Verbose     bool          `yaml:"verbose" env:"COACHDESK_VERBOSE" env-default:"false"`
}

// MustLoad reads the config, panicking on malformed input. Environment
// variables override the file.
func MustLoad() *Config {
	var cfg Config

	path := fetchConfigPath()
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			panic("config file does not exist: " + path)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			panic("failed to read config: " + err.Error())
		}
		return &cfg
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		panic("failed to read config from environment: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath reads the config path from the --config flag or the
// CONFIG_PATH environment variable. Flag takes priority.
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "path to config file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
