package gai

import (
	"net"
	"strings"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
)

// fromMsg walks the answer records of a decoded response, forwarding every
// A/AAAA record matching the question to the list builder. The canonical
// name of the request is learned from the question on the first match and
// never overwritten.
func (q *Query) fromMsg(msg *dns.Msg) error {
	if len(msg.Question) == 0 {
		return errors.New("no question in response")
	}
	question := msg.Question[0]

	for _, rr := range msg.Answer {
		hdr := rr.Header()
		if hdr.Rrtype != question.Qtype || hdr.Class != question.Qclass {
			continue
		}
		if q.canon == "" {
			q.canon = strings.TrimSuffix(question.Name, ".")
		}

		var ip net.IP
		var family Family
		switch a := rr.(type) {
		case *dns.A:
			ip = a.A.To4()
			family = INET
		case *dns.AAAA:
			ip = a.AAAA.To16()
			family = INET6
		default:
			continue
		}
		if ip == nil {
			continue
		}

		var cname string
		if q.hints.Flags&CanonName != 0 {
			cname = strings.TrimSuffix(hdr.Name, ".")
		} else if q.hints.Flags&FQDN != 0 {
			cname = q.canon
		}
		q.addEntry(ip, family, cname)
	}
	return nil
}
