package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Watch reloads the file at path whenever it is written and delivers the
// result on the returned channel. The channel holds only the latest config;
// a reload nobody has read yet is replaced. Invalid files are reported to
// onError and skipped.
func Watch(path string, onError func(error)) (<-chan *Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadConfig, err)
	}

	v := viper.New()
	v.SetConfigFile(abs)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadConfig, err)
	}

	out := make(chan *Config, 1)

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		cfg, err := Load(abs)
		if err != nil {
			if onError != nil {
				onError(err)
			}

			return
		}

		select {
		case <-out:
		default:
		}

		out <- cfg
	})
	v.WatchConfig()

	return out, nil
}
