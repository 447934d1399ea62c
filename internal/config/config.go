// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultConfigPath = "flashcards.yaml"

type Config struct {
	ImportPath string `yaml:"import_path"`
	ExportPath string `yaml:"export_path"`
	// LogFile is the default answer for the "log" command's file prompt.
	LogFile string `yaml:"log_file"`
	Verbose bool   `yaml:"verbose"`
	Debug   bool   `yaml:"debug"`
}

// Options are the values taken from the command line. Empty strings mean
// "not given".
type Options struct {
	ImportPath  string
	ExportPath  string
	ConfigPath  string
	Verbose     bool
	Debug       bool
	ShowVersion bool
}

// Parse scans args for the flags it knows. A value flag consumes the
// argument after it. Anything unrecognised is skipped.
func Parse(args []string) Options {
	var opts Options
	for i := 0; i < len(args); i++ {
		var target *string
		switch args[i] {
		case "-import":
			target = &opts.ImportPath
		case "-export":
			target = &opts.ExportPath
		case "-config":
			target = &opts.ConfigPath
		case "-verbose":
			opts.Verbose = true
		case "-debug":
			opts.Debug = true
		case "-version":
			opts.ShowVersion = true
		}

		if target != nil && i+1 < len(args) {
			i++
			*target = args[i]
		}
	}
	return opts
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if cfg.LogFile == "" {
		cfg.LogFile = "flashcards.log"
	}

	return &cfg, nil
}

// Resolve loads the config file named in opts (or the default one if it
// exists) and applies the command-line overrides on top.
func Resolve(opts Options) (*Config, error) {
	path := opts.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	cfg, err := Load(path)
	if err != nil {
		if opts.ConfigPath != "" || !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		cfg = &Config{LogFile: "flashcards.log"}
	}

	if opts.ImportPath != "" {
		cfg.ImportPath = opts.ImportPath
	}
	if opts.ExportPath != "" {
		cfg.ExportPath = opts.ExportPath
	}
	cfg.Verbose = cfg.Verbose || opts.Verbose
	cfg.Debug = cfg.Debug || opts.Debug

	return cfg, nil
}
