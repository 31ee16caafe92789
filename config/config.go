// Package config loads chartkit settings from an optional .env file and
// CHARTKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"chartkit/chartjs"
	"chartkit/page"
)

const envPrefix = "CHARTKIT"

type Settings struct {
	Addr        string
	LogLevel    string
	FontFamily  string
	FontSize    int
	FontColor   string
	ChartJSURL  string
	CORSOrigins []string
}

// Theme returns the chart theme described by s.
func (s Settings) Theme() chartjs.Theme {
	return chartjs.DefaultTheme().WithFont(s.FontFamily, s.FontSize).WithColor(s.FontColor)
}

func defaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("font_family", chartjs.DefaultFontFamily)
	v.SetDefault("font_size", chartjs.DefaultFontSize)
	v.SetDefault("font_color", chartjs.DefaultTextColor)
	v.SetDefault("chartjs_url", page.DefaultChartJSURL)
	v.SetDefault("cors_origins", "*")
}

// Load reads envFiles (".env" when none are given) and then the
// environment. Missing env files are not an error.
func Load(envFiles ...string) (Settings, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	defaults(v)

	s := Settings{
		Addr:        v.GetString("addr"),
		LogLevel:    v.GetString("log_level"),
		FontFamily:  v.GetString("font_family"),
		FontSize:    v.GetInt("font_size"),
		FontColor:   v.GetString("font_color"),
		ChartJSURL:  v.GetString("chartjs_url"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
	}
	if s.FontSize <= 0 {
		return Settings{}, fmt.Errorf("invalid %s_FONT_SIZE: %d", envPrefix, s.FontSize)
	}
	return s, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
