// Package config loads sfgrid settings from a TOML file and SFGRID_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/andareed/siftly-grid/gridsearch"
)

const (
	EnvPrefix = "SFGRID"
	FileName  = ".sfgrid"
)

type Config struct {
	Search SearchConfig `mapstructure:"search" toml:"search"`
	Grid   GridConfig   `mapstructure:"grid" toml:"grid"`
	Demo   DemoConfig   `mapstructure:"demo" toml:"demo"`
	Log    LogConfig    `mapstructure:"log" toml:"log"`
}

type SearchConfig struct {
	// Columns limits matching to these column names; empty means all.
	Columns   []string `mapstructure:"columns" toml:"columns"`
	Highlight bool     `mapstructure:"highlight" toml:"highlight"`
	// Match is contains, case-sensitive or fuzzy.
	Match string `mapstructure:"match" toml:"match"`
}

type GridConfig struct {
	GroupBy       []string `mapstructure:"group_by" toml:"group_by"`
	ShowRowHeader bool     `mapstructure:"show_row_header" toml:"show_row_header"`
	Details       bool     `mapstructure:"details" toml:"details"`
	FilterRow     string   `mapstructure:"filter_row" toml:"filter_row"`
	AddNewRow     string   `mapstructure:"add_new_row" toml:"add_new_row"`
	HiddenColumns []string `mapstructure:"hidden_columns" toml:"hidden_columns"`
}

// DemoConfig holds the texts behind the two quick-search keys.
type DemoConfig struct {
	NextText     string `mapstructure:"next_text" toml:"next_text"`
	PreviousText string `mapstructure:"previous_text" toml:"previous_text"`
}

type LogConfig struct {
	File string `mapstructure:"file" toml:"file"`
}

func Default() *Config {
	return &Config{
		Search: SearchConfig{Columns: []string{}, Highlight: true, Match: "contains"},
		Grid: GridConfig{
			GroupBy:       []string{},
			FilterRow:     "none",
			AddNewRow:     "none",
			HiddenColumns: []string{},
		},
		Demo: DemoConfig{NextText: "Germany", PreviousText: "BOTTM"},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("search.columns", d.Search.Columns)
	v.SetDefault("search.highlight", d.Search.Highlight)
	v.SetDefault("search.match", d.Search.Match)
	v.SetDefault("grid.group_by", d.Grid.GroupBy)
	v.SetDefault("grid.show_row_header", d.Grid.ShowRowHeader)
	v.SetDefault("grid.details", d.Grid.Details)
	v.SetDefault("grid.filter_row", d.Grid.FilterRow)
	v.SetDefault("grid.add_new_row", d.Grid.AddNewRow)
	v.SetDefault("grid.hidden_columns", d.Grid.HiddenColumns)
	v.SetDefault("demo.next_text", d.Demo.NextText)
	v.SetDefault("demo.previous_text", d.Demo.PreviousText)
	v.SetDefault("log.file", d.Log.File)
}

// Load reads path, or .sfgrid.toml from the working directory or home
// directory when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := gridsearch.MatcherByName(c.Search.Match); err != nil {
		return fmt.Errorf("search.match: %w", err)
	}
	if _, err := ParsePosition(c.Grid.FilterRow); err != nil {
		return fmt.Errorf("grid.filter_row: %w", err)
	}
	if _, err := ParsePosition(c.Grid.AddNewRow); err != nil {
		return fmt.Errorf("grid.add_new_row: %w", err)
	}
	return nil
}

// WriteExample writes the default configuration to path as TOML. It refuses
// to overwrite an existing file.
func WriteExample(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(Default()); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// ParsePosition maps a config value to a filter or add-new row position.
func ParsePosition(s string) (gridsearch.RowPosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return gridsearch.PositionNone, nil
	case "top":
		return gridsearch.PositionTop, nil
	case "bottom":
		return gridsearch.PositionBottom, nil
	case "fixed-top", "fixedtop":
		return gridsearch.PositionFixedTop, nil
	case "fixed-bottom", "fixedbottom":
		return gridsearch.PositionFixedBottom, nil
	}
	return gridsearch.PositionNone, fmt.Errorf("unknown row position %q", s)
}
