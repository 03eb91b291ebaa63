package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type SeedRate struct {
	MetalType   string `yaml:"metal_type"`
	RatePerGram string `yaml:"rate_per_gram"`
}

type SeedProduct struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	MetalType   string `yaml:"metal_type"`
	WeightGrams string `yaml:"weight_grams"`
	ImageURL    string `yaml:"image_url"`
	IsFeatured  bool   `yaml:"is_featured"`
}

type SeedConfig struct {
	Rates    []SeedRate    `yaml:"rates"`
	Products []SeedProduct `yaml:"products"`
}

// yaml path : docs/seed.yaml
func LoadSeedConfig(path string) (*SeedConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &SeedConfig{}
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}
