package gai

import (
	"strings"

	"github.com/pkg/errors"
)

// YPMap is a NIS-style hosts map. A lookup returns one or more hosts-format
// lines for the key, or an error when there is no match or the domain is
// unavailable.
type YPMap interface {
	Match(mapname, key string) (string, error)
}

// StaticYPMap is an in-memory YPMap keyed by "mapname/key". Useful for
// tests and environments without NIS.
type StaticYPMap map[string]string

var _ YPMap = StaticYPMap{}

func (m StaticYPMap) Match(mapname, key string) (string, error) {
	line, ok := m[mapname+"/"+key]
	if !ok {
		return "", errors.Errorf("no match for %q in %s", key, mapname)
	}
	return line, nil
}

// fromYP processes the result of a NIS map lookup. The map key already
// matched the hostname, so only the address needs checking. Lines that
// don't parse are skipped.
func (q *Query) fromYP(family Family, res string) {
	for _, line := range strings.Split(res, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}
		ip, ok := sockaddrFromString(family, tokens[0])
		if !ok {
			continue
		}
		var cname string
		if q.hints.Flags&CanonName != 0 {
			cname = tokens[1]
		} else if q.hints.Flags&FQDN != 0 {
			cname = q.canon
			if cname == "" {
				cname = tokens[1]
			}
		}
		q.addEntry(ip, family, cname)
	}
}
