package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Dataset DatasetConfig `yaml:"dataset"`
	Index   IndexConfig   `yaml:"index"`
	Bench   BenchConfig   `yaml:"bench"`
}

type DatasetConfig struct {
	Size     int   `yaml:"size"`      // number of generated records
	KeyRange int64 `yaml:"key_range"` // keys drawn from [0, key_range)
	Seed     int64 `yaml:"seed"`
}

type IndexConfig struct {
	BTreeDegree    int     `yaml:"btree_degree"`
	BloomFalseProb float64 `yaml:"bloom_false_prob"`
}

type BenchConfig struct {
	PointQueries int   `yaml:"point_queries"`
	RangeQueries int   `yaml:"range_queries"`
	RangeSpan    int64 `yaml:"range_span"` // width of each range query
}

func Load(configPath string) (*Config, error) {
	cfg := &Config{
		Dataset: DatasetConfig{
			Size:     100000,
			KeyRange: 200000,
			Seed:     42,
		},
		Index: IndexConfig{
			BTreeDegree:    32,
			BloomFalseProb: 0.01,
		},
		Bench: BenchConfig{
			PointQueries: 50000,
			RangeQueries: 2000,
			RangeSpan:    100,
		},
	}

	if configPath == "" {
		for _, p := range []string{"configs/indexkit.yaml", "indexkit.yaml"} {
			data, err := os.ReadFile(p)
			if err == nil {
				if err := yaml.Unmarshal(data, cfg); err != nil {
					return cfg, err
				}
				applyDefaults(cfg)
				return cfg, nil
			}
		}
		applyDefaults(cfg)
		return cfg, nil // no file found: use defaults
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, err
	}

	applyDefaults(cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Dataset.Size <= 0 {
		cfg.Dataset.Size = 100000
	}
	if cfg.Dataset.KeyRange <= 0 {
		cfg.Dataset.KeyRange = int64(cfg.Dataset.Size) * 2
	}
	if cfg.Index.BTreeDegree < 2 {
		cfg.Index.BTreeDegree = 32
	}
	if cfg.Index.BloomFalseProb <= 0 || cfg.Index.BloomFalseProb >= 1 {
		cfg.Index.BloomFalseProb = 0.01
	}
	if cfg.Bench.PointQueries <= 0 {
		cfg.Bench.PointQueries = 50000
	}
	if cfg.Bench.RangeQueries <= 0 {
		cfg.Bench.RangeQueries = 2000
	}
	if cfg.Bench.RangeSpan <= 0 {
		cfg.Bench.RangeSpan = 100
	}
}
