package gai

// Source is one resolution source, tried in configured order.
type Source int

const (
	SourceDNS Source = iota
	SourceHosts
	SourceNIS
)

func (s Source) String() string {
	switch s {
	case SourceDNS:
		return "dns"
	case SourceHosts:
		return "hosts"
	case SourceNIS:
		return "nis"
	}
	return "unknown"
}

// Config is the resolver context shared by all queries started from it. It
// must not be modified once queries are in flight; queries themselves never
// write to it.
type Config struct {
	// Sources to try, in order. Defaults to the hosts file followed by DNS.
	Sources []Source

	// Families tried against each source when the hints don't pin one.
	// Defaults to INET then INET6.
	Families []Family

	// Location of the hosts file, defaults to /etc/hosts.
	HostsFile string

	// NIS-style map. The NIS source reports nothing when nil.
	YP YPMap

	// Service name database. Defaults to the system services table.
	Services ServiceDB

	// Issues DNS sub-queries. The DNS source reports nothing when nil.
	Querier Querier
}

var (
	defaultSources  = []Source{SourceHosts, SourceDNS}
	defaultFamilies = []Family{INET, INET6}
)

func (c *Config) sources() []Source {
	if len(c.Sources) == 0 {
		return defaultSources
	}
	return c.Sources
}

func (c *Config) families() []Family {
	if len(c.Families) == 0 {
		return defaultFamilies
	}
	return c.Families
}

func (c *Config) hostsFile() string {
	if c.HostsFile == "" {
		return "/etc/hosts"
	}
	return c.HostsFile
}

func (c *Config) services() ServiceDB {
	if c.Services == nil {
		return systemServiceDB{}
	}
	return c.Services
}
