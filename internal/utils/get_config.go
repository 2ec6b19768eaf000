package utils

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// Development defaults used when neither config.yaml nor the environment
// provides a value. The service key is the registry's public sample key and
// must be replaced for any real deployment.
const (
	DefaultRegistryBaseURL = "http://data.ekape.or.kr/openapi-data/service/user/animalTrace/traceNoSearch"
	DefaultServiceKey      = "TEST-SERVICE-KEY"
	DefaultPort            = "8080"
)

type Config struct {
	Port string `yaml:"PORT"`

	// Animal-trace registry configuration
	RegistryBaseURL    string `yaml:"REGISTRY_BASE_URL"`
	RegistryServiceKey string `yaml:"REGISTRY_SERVICE_KEY"`
}

var config Config

func LoadConfig() {
	file, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Printf("Error reading YAML file: %s\n", err)
		return
	}

	err = yaml.Unmarshal(file, &config)
	if err != nil {
		log.Printf("Error parsing YAML file: %s\n", err)
		return
	}

	// Mirror registry values so they are also reachable via os.Getenv
	os.Setenv("REGISTRY_BASE_URL", config.RegistryBaseURL)
	os.Setenv("REGISTRY_SERVICE_KEY", config.RegistryServiceKey)
}

func GetConfig(key string) string {
	switch key {
	case "PORT":
		return firstOf(config.Port, os.Getenv("PORT"), DefaultPort)
	case "REGISTRY_BASE_URL":
		return firstOf(config.RegistryBaseURL, os.Getenv("REGISTRY_BASE_URL"), DefaultRegistryBaseURL)
	case "REGISTRY_SERVICE_KEY":
		return firstOf(config.RegistryServiceKey, os.Getenv("REGISTRY_SERVICE_KEY"), DefaultServiceKey)
	default:
		return ""
	}
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
