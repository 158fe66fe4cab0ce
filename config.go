package main

import (
	"os"

	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

// ReadConfig loads the service configuration. A missing or unreadable config
// is fatal, the service cannot run without a graph source.
func ReadConfig(file string) Config {
	slog.Info("Reading config file")
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read config file: " + err.Error())
		panic(err)
	}
	var config Config
	yaml.Unmarshal(data, &config)
	return config
}

type Config struct {
	Source struct {
		OSM string `yaml:"osm"`
	} `yaml:"source"`
	Home struct {
		Lat float64 `yaml:"lat"`
		Lon float64 `yaml:"lon"`
	} `yaml:"home"`
	Routing RoutingOptions `yaml:"routing"`
	Server  struct {
		Address  string `yaml:"address"`
		LogLevel string `yaml:"log-level"`
	} `yaml:"server"`
}

type RoutingOptions struct {
	MaxSnapDistanceM  float64 `yaml:"max-snap-distance-m"`
	DefaultMinKm      float64 `yaml:"default-min-km"`
	DefaultMaxKm      float64 `yaml:"default-max-km"`
	DefaultElevationM float64 `yaml:"default-elevation-m"`

	// placeholder until a real elevation source is wired in
	ConstantElevationM float64 `yaml:"constant-elevation-m"`
}
