package model

import "time"

// Config holds the full runtime configuration.
type Config struct {
	Source SourceConfig `yaml:"source" mapstructure:"source"`
	HTTP   HTTPConfig   `yaml:"http" mapstructure:"http"`
	Cache  CacheConfig  `yaml:"cache" mapstructure:"cache"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
}

// SourceConfig names the two places the dataset can come from.
type SourceConfig struct {
	WikipediaURL string `yaml:"wikipedia_url" mapstructure:"wikipedia_url"`
	FrozenCSVURL string `yaml:"frozen_csv_url" mapstructure:"frozen_csv_url"`
}

// HTTPConfig controls the fetcher.
type HTTPConfig struct {
	Timeout           time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent         string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes      int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RequestsPerSecond float64       `yaml:"requests_per_second" mapstructure:"requests_per_second"`
}

// CacheConfig controls the fetched-page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// OutputConfig controls where snapshots are written.
type OutputConfig struct {
	Dir         string `yaml:"dir" mapstructure:"dir"`
	DatasetName string `yaml:"dataset_name" mapstructure:"dataset_name"`
	Verbose     bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			WikipediaURL: "https://en.wikipedia.org/wiki/List_of_presidents_of_the_United_States",
			FrozenCSVURL: "https://raw.githubusercontent.com/jray-8/us-presidents-dataset/main/data/us_presidents_cleaned.csv",
		},
		HTTP: HTTPConfig{
			Timeout:           30 * time.Second,
			UserAgent:         "presidents/0.1 (+https://github.com/jray-8/us-presidents-dataset)",
			MaxBodyBytes:      4_000_000,
			RequestsPerSecond: 1,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".presidents-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Output: OutputConfig{
			Dir:         "data",
			DatasetName: "us_presidents_cleaned",
		},
	}
}
