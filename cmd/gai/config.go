package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	gai "github.com/folbricht/gai"
)

type config struct {
	Title     string
	Sources   []string
	Families  []string
	HostsFile string
	Resolver  resolver
	Services  map[string]int
	Syslog    syslogConfig
}

type resolver struct {
	Address  string
	Protocol string
}

type syslogConfig struct {
	Network  string
	Address  string
	Priority int
	Tag      string
}

// loadConfig reads a config file and returns the decoded structure.
func loadConfig(name string) (config, error) {
	var c config
	f, err := os.Open(name)
	if err != nil {
		return c, err
	}
	defer f.Close()
	_, err = toml.DecodeReader(f, &c)
	return c, err
}

// resolverConfig translates the file values into a resolver context.
func resolverConfig(c config) (*gai.Config, error) {
	cfg := &gai.Config{
		HostsFile: c.HostsFile,
	}
	for _, s := range c.Sources {
		switch s {
		case "dns":
			cfg.Sources = append(cfg.Sources, gai.SourceDNS)
		case "hosts":
			cfg.Sources = append(cfg.Sources, gai.SourceHosts)
		case "nis":
			cfg.Sources = append(cfg.Sources, gai.SourceNIS)
		default:
			return nil, fmt.Errorf("unsupported source '%s'", s)
		}
	}
	for _, f := range c.Families {
		switch f {
		case "inet":
			cfg.Families = append(cfg.Families, gai.INET)
		case "inet6":
			cfg.Families = append(cfg.Families, gai.INET6)
		default:
			return nil, fmt.Errorf("unsupported family '%s'", f)
		}
	}
	if len(c.Services) > 0 {
		db := make(gai.StaticServiceDB, len(c.Services))
		for k, v := range c.Services {
			db[k] = v
		}
		cfg.Services = db
	}
	address := c.Resolver.Address
	if address == "" {
		address = "8.8.8.8:53"
	}
	protocol := c.Resolver.Protocol
	if protocol == "" {
		protocol = "udp"
	}
	switch protocol {
	case "udp", "tcp":
		cfg.Querier = gai.NewDNSQuerier(address, protocol)
	default:
		return nil, fmt.Errorf("unsupported protocol '%s' for resolver", protocol)
	}
	return cfg, nil
}
