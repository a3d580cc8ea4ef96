package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

var (
	cfgFile = "pirots2ascii/config.json"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

// RenderConfig controls board and path output.
type RenderConfig struct {
	GridWidth      int  `json:"grid_width"`
	GridHeight     int  `json:"grid_height"`
	HighlightColor int  `json:"highlight_color"` // ANSI background code
	SkipBlank      bool `json:"skip_blank"`
}

// ServerConfig holds settings for the upload server.
// Environment variables take precedence over the config file.
type ServerConfig struct {
	Port        int    `json:"port" env:"PORT"`
	Addr        string `json:"addr" env:"PIROTS_ADDR"`
	MaxUploadMB int64  `json:"max_upload_mb" env:"PIROTS_MAX_UPLOAD_MB"`
}

// BrowserColors are tcell palette indices for the terminal browser.
type BrowserColors struct {
	Border    int `json:"border"`
	Title     int `json:"title"`
	Label     int `json:"label"`
	Hint      int `json:"hint"`
	Selected  int `json:"selected"`
	Window    int `json:"window"`
	Path      int `json:"path"`
	Highlight int `json:"highlight"`
}

type Config struct {
	Render  RenderConfig  `json:"render"`
	Server  ServerConfig  `json:"server"`
	Browser BrowserColors `json:"browser"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// applyEnv overrides server settings from the environment.
func applyEnv(c *Config) error {
	if err := env.Parse(&c.Server); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ListenAddr returns the address the upload server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Addr, c.Server.Port)
}

func (c *Config) Validate() error {
	if c.Render.GridWidth <= 0 || c.Render.GridHeight <= 0 {
		return &InvalidConfig{"Grid width and height must be positive"}
	}
	hl := c.Render.HighlightColor
	if !(hl >= 40 && hl <= 47) && !(hl >= 100 && hl <= 107) {
		return &InvalidConfig{"Highlight color must be an ANSI background code (40-47, 100-107)"}
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return &InvalidConfig{"Port must be between 1 and 65535"}
	}
	if c.Server.MaxUploadMB <= 0 {
		return &InvalidConfig{"Maximum upload size must be positive"}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return err
	}
	return saveCfgFile(absPath, c, 0664)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %v", filePath, err)}
	}
	return nil
}
