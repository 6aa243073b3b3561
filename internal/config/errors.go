package config

import "errors"

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidOverride     = errors.New("override must be in key=value form")

	ErrUnknownScene  = errors.New("unknown scene")
	ErrHeadlessBuild = errors.New("GUI host requires building with the 'ebiten' tag")
)
