package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/oarkflow/errors"
)

type ServerConfig struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
}

type Config struct {
	// Prompt is printed before every interactive line.
	Prompt string `yaml:"prompt" json:"prompt"`
	// HistoryFile persists interactive history between sessions.
	HistoryFile string `yaml:"history_file,omitempty" json:"history_file,omitempty"`
	// Prelude lists definitions files loaded into the environment on startup.
	Prelude []string `yaml:"prelude,omitempty" json:"prelude,omitempty"`
	// EvalSteps caps every evaluation at this many reduction steps.
	// Zero keeps the evaluator unbounded, which is the core semantics.
	EvalSteps int          `yaml:"eval_steps,omitempty" json:"eval_steps,omitempty"`
	Server    ServerConfig `yaml:"server" json:"server"`
}

func Default() *Config {
	return &Config{
		Prompt: "λ> ",
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("parsing config " + path + ": " + err.Error())
	}
	if cfg.Prompt == "" {
		cfg.Prompt = "λ> "
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	return cfg, nil
}
