package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config locates the blob directory.
type Config interface {
	BasePath() string
}

// Settings is the full deck configuration.
type Settings struct {
	Path    string          `json:"path"`
	Log     LogSettings     `json:"log"`
	Window  WindowSettings  `json:"window"`
	Cascade CascadeSettings `json:"cascade"`
}

// LogSettings configures the zap logger.
type LogSettings struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

// WindowSettings sizes new windows in terminal cells.
type WindowSettings struct {
	MinWidth  int `json:"minWidth"`
	MinHeight int `json:"minHeight"`
	Width     int `json:"width"`
	Height    int `json:"height"`
}

// CascadeSettings places new windows in terminal cells.
type CascadeSettings struct {
	BaseX   int `json:"baseX"`
	BaseY   int `json:"baseY"`
	OffsetX int `json:"offsetX"`
	OffsetY int `json:"offsetY"`
}

// BasePath implements Config.
func (s *Settings) BasePath() string {
	return s.Path
}

// LoadConfig reads .deck.yaml from $DECK_CONFIG_PATH or the working
// directory. Every key can be overridden with a DECK_ environment variable.
func LoadConfig() (*Settings, error) {
	viper.SetDefault("path", "~/.deck.db")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.file", "~/.deck.log")
	viper.SetDefault("window.min_width", 24)
	viper.SetDefault("window.min_height", 8)
	viper.SetDefault("window.width", 48)
	viper.SetDefault("window.height", 14)
	viper.SetDefault("cascade.base_x", 2)
	viper.SetDefault("cascade.base_y", 1)
	viper.SetDefault("cascade.offset_x", 3)
	viper.SetDefault("cascade.offset_y", 2)
	viper.SetConfigName(".deck") // .yaml is implicit
	viper.SetEnvPrefix("DECK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if override := os.Getenv("DECK_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	logFile, err := homedir.Expand(viper.GetString("log.file"))
	if err != nil {
		return nil, fmt.Errorf("store: expand log file: %w", err)
	}

	return &Settings{
		Path: path,
		Log: LogSettings{
			Level: viper.GetString("log.level"),
			File:  logFile,
		},
		Window: WindowSettings{
			MinWidth:  viper.GetInt("window.min_width"),
			MinHeight: viper.GetInt("window.min_height"),
			Width:     viper.GetInt("window.width"),
			Height:    viper.GetInt("window.height"),
		},
		Cascade: CascadeSettings{
			BaseX:   viper.GetInt("cascade.base_x"),
			BaseY:   viper.GetInt("cascade.base_y"),
			OffsetX: viper.GetInt("cascade.offset_x"),
			OffsetY: viper.GetInt("cascade.offset_y"),
		},
	}, nil
}
