package main

import (
	"context"
	"fmt"
	"os"

	syslog "github.com/RackSec/srslog"
	gai "github.com/folbricht/gai"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type options struct {
	configFile string
	ipv4       bool
	ipv6       bool
	socktype   string
	protocol   string
	passive    bool
	canonname  bool
	fqdn       bool
	numeric    bool
	verbose    bool
}

func main() {
	var opt options
	cmd := &cobra.Command{
		Use:   "gai [flags] [hostname] [service]",
		Short: "Resolve hostname/service pairs into socket addresses",
		Long: `Resolve hostname/service pairs into socket addresses.

Lookups try a configurable sequence of sources (hosts file, DNS,
NIS maps) across the requested address families and print one
line per usable socket address. Without a hostname, the loopback
or wildcard address is produced instead.
`,
		Example: `  gai www.example.com http
  gai -6 www.example.com
  gai --passive "" 8053`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opt, args)
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVarP(&opt.configFile, "config", "c", "", "config file in TOML format")
	cmd.Flags().BoolVarP(&opt.ipv4, "ipv4", "4", false, "resolve IPv4 addresses only")
	cmd.Flags().BoolVarP(&opt.ipv6, "ipv6", "6", false, "resolve IPv6 addresses only")
	cmd.Flags().StringVar(&opt.socktype, "socktype", "", "limit to socket type, 'stream', 'dgram', or 'raw'")
	cmd.Flags().StringVar(&opt.protocol, "protocol", "", "limit to protocol, 'tcp' or 'udp'")
	cmd.Flags().BoolVar(&opt.passive, "passive", false, "produce the wildcard address when no hostname is given")
	cmd.Flags().BoolVar(&opt.canonname, "canonname", false, "report the canonical name of the host")
	cmd.Flags().BoolVar(&opt.fqdn, "fqdn", false, "report the fully-qualified query name")
	cmd.Flags().BoolVar(&opt.numeric, "numeric", false, "the hostname must be a numeric address literal")
	cmd.Flags().BoolVarP(&opt.verbose, "verbose", "v", false, "debug logging")
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opt options, args []string) error {
	if opt.verbose {
		gai.Log.SetLevel(logrus.DebugLevel)
	}

	var c config
	if opt.configFile != "" {
		var err error
		c, err = loadConfig(opt.configFile)
		if err != nil {
			return err
		}
	}
	cfg, err := resolverConfig(c)
	if err != nil {
		return err
	}

	hints, err := buildHints(opt)
	if err != nil {
		return err
	}

	hostname := args[0]
	var service string
	if len(args) > 1 {
		service = args[1]
	}

	addrs, err := gai.GetAddrInfo(context.Background(), hostname, service, hints, cfg)
	if err != nil {
		return err
	}

	var w *syslog.Writer
	if c.Syslog.Address != "" || c.Syslog.Tag != "" {
		w, err = syslog.Dial(c.Syslog.Network, c.Syslog.Address, syslog.Priority(c.Syslog.Priority), c.Syslog.Tag)
		if err != nil {
			// Log any error but don't block if this fails
			logrus.New().WithError(err).Error("failed to initialize syslog")
			w = nil
		}
	}

	for _, ai := range addrs {
		line := fmt.Sprintf("%s %s %s %s", ai.Family, ai.SockType, ai.Protocol, ai)
		if ai.CanonName != "" {
			line += " " + ai.CanonName
		}
		fmt.Println(line)
		if w != nil {
			msg := fmt.Sprintf("qname=%s service=%s addr=%s", hostname, service, ai)
			if _, err := w.Write([]byte(msg)); err != nil {
				logrus.New().WithError(err).Error("failed to send syslog")
			}
		}
	}
	return nil
}

func buildHints(opt options) (*gai.Hints, error) {
	hints := new(gai.Hints)
	switch {
	case opt.ipv4 && opt.ipv6:
		return nil, fmt.Errorf("only one of -4 and -6 can be given")
	case opt.ipv4:
		hints.Family = gai.INET
	case opt.ipv6:
		hints.Family = gai.INET6
	}
	switch opt.socktype {
	case "":
	case "stream":
		hints.SockType = gai.SockStream
	case "dgram":
		hints.SockType = gai.SockDgram
	case "raw":
		hints.SockType = gai.SockRaw
	default:
		return nil, fmt.Errorf("unsupported socket type '%s'", opt.socktype)
	}
	switch opt.protocol {
	case "":
	case "tcp":
		hints.Protocol = gai.ProtoTCP
	case "udp":
		hints.Protocol = gai.ProtoUDP
	default:
		return nil, fmt.Errorf("unsupported protocol '%s'", opt.protocol)
	}
	if opt.passive {
		hints.Flags |= gai.Passive
	}
	if opt.canonname {
		hints.Flags |= gai.CanonName
	}
	if opt.fqdn {
		hints.Flags |= gai.FQDN
	}
	if opt.numeric {
		hints.Flags |= gai.NumericHost
	}
	return hints, nil
}
