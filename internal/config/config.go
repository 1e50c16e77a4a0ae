// Package config layers flags, environment and an optional config file into
// the application configuration. Flat keys double as env names: the key
// "gemini-api-key" reads EDUAI_GEMINI_API_KEY.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/bacdz/eduai/internal/llm"
	"github.com/bacdz/eduai/internal/store"
)

// Config is the resolved application configuration.
type Config struct {
	// Lang is the interface language ("ar" or "fr"). Lesson content stays
	// Arabic regardless.
	Lang string

	// DBPath is the SQLite database location.
	DBPath string

	LLM llm.Config
}

// Load resolves configuration for a command: flags over environment over the
// config file over defaults.
func Load(cmd *cobra.Command) (*Config, error) {
	v := newViper(cmd)

	cfg := &Config{
		Lang:   v.GetString("lang"),
		DBPath: v.GetString("db"),
	}
	if cfg.Lang == "" {
		cfg.Lang = "ar"
	}
	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = p
	}

	cfg.LLM = llmConfig(v)
	return cfg, nil
}

// newViper binds a command's flags and environment to a fresh viper
// instance, then layers the config file underneath.
func newViper(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	if cmd != nil {
		_ = v.BindPFlags(cmd.Flags())
	}

	v.SetEnvPrefix("EDUAI")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range configDirs() {
		v.AddConfigPath(dir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "warning: config file: %v\n", err)
		}
	}

	return v
}

func configDirs() []string {
	var dirs []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		dirs = append(dirs, filepath.Join(xdg, "eduai"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".config", "eduai"))
	}
	return dirs
}

// llmConfig reads provider settings. When no provider was picked explicitly
// and the default has no key, the conventional key variables are probed.
func llmConfig(v *viper.Viper) llm.Config {
	cfg := llm.DefaultConfig()

	explicit := false
	if p := v.GetString("llm-provider"); p != "" {
		cfg.Provider = p
		explicit = true
	}

	set := func(dst *string, key string) {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
	set(&cfg.Gemini.APIKey, "gemini-api-key")
	set(&cfg.Gemini.Model, "gemini-model")
	set(&cfg.OpenAI.APIKey, "openai-api-key")
	set(&cfg.OpenAI.Model, "openai-model")
	set(&cfg.OpenAI.BaseURL, "openai-base-url")
	set(&cfg.Anthropic.APIKey, "anthropic-api-key")
	set(&cfg.Anthropic.Model, "anthropic-model")
	set(&cfg.OpenRouter.APIKey, "openrouter-api-key")
	set(&cfg.OpenRouter.Model, "openrouter-model")

	if !explicit && cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			return discovered
		}
	}
	return cfg
}
