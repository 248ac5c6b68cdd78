package main

import (
	"indigo/internal/config"
	"os"

	"gopkg.in/yaml.v2"
)

// prints the default configuration, ready to be saved as config.yaml
func main() {
	if err := yaml.NewEncoder(os.Stdout).Encode(config.DefaultConfig()); err != nil {
		panic(err)
	}
}
