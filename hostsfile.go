package gai

import (
	"bufio"
	"io"
	"net"
	"strings"
)

// fromFile scans a hosts-format table for lines matching the query hostname
// in the given family. Malformed lines and read errors are not fatal, they
// only end this source's attempt.
func (q *Query) fromFile(family Family, r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens := strings.Fields(line)
		if len(tokens) < 2 {
			continue
		}
		ip, cname, ok := q.matchLine(family, tokens)
		if !ok {
			continue
		}
		q.addEntry(ip, family, cname)
	}
	if err := scanner.Err(); err != nil {
		q.logger().WithError(err).Debug("error reading hosts table")
	}
}

// matchLine checks one address-plus-names line. The query hostname has to
// equal one of the name tokens, compared case-insensitively, and the
// address token has to parse in the wanted family.
func (q *Query) matchLine(family Family, tokens []string) (net.IP, string, bool) {
	var found bool
	for _, name := range tokens[1:] {
		if strings.EqualFold(q.hostname, strings.TrimSuffix(name, ".")) {
			found = true
			break
		}
	}
	if !found {
		return nil, "", false
	}
	ip, ok := sockaddrFromString(family, tokens[0])
	if !ok {
		return nil, "", false
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
	return ip, cname, true
}
