package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type config struct {
	In      string
	Fmt     string
	Lines   bool
	Group   bool
	Verbose bool
}

// loadConfig resolves settings from flags, CALC_* environment variables, and
// the file named by the config setting, in that order of priority.
func loadConfig(v *viper.Viper, flags *pflag.FlagSet) (config, error) {
	v.SetDefault("fmt", "%g")
	v.SetDefault("lines", false)
	v.SetDefault("group", false)
	v.SetEnvPrefix("calc")
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return config{}, err
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return config{}, fmt.Errorf("reading config %s: %w", file, err)
		}
		log.WithFields(log.Fields{
			"file": v.ConfigFileUsed(),
		}).Debug("Loaded configuration")
	}

	cfg := config{
		In:      v.GetString("in"),
		Fmt:     v.GetString("fmt"),
		Lines:   v.GetBool("lines"),
		Group:   v.GetBool("group"),
		Verbose: v.GetBool("verbose"),
	}
	if cfg.Fmt == "" {
		return config{}, fmt.Errorf("result format must not be empty")
	}
	return cfg, nil
}
