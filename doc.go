/*
Package gai resolves hostname/service pairs into lists of usable socket
addresses without blocking the caller, in the manner of getaddrinfo. A
lookup tries a configurable sequence of sources (numeric literals, the
hosts file, DNS, NIS-style maps) across the requested address families and
merges whatever the first successful source finds into one normalized list.

Queries

A Query is a resumable state machine. Resume advances it as far as possible
and either returns the final result or reports that the owned DNS sub-query
is still outstanding; the caller resumes again once the sub-query has made
progress. A query never spawns goroutines of its own and never blocks on
I/O. GetAddrInfo wraps this loop for callers that just want an answer.

Hints

Hints narrow the produced addresses by family, socket type, transport
protocol and a handful of flags, mirroring the classic addrinfo hints. Every
discovered address expands into one entry per compatible
family/socktype/protocol combination, each carrying the port resolved for
its protocol.

Sources

The hosts file and NIS sources are synchronous local lookups; an
unavailable backing store just means the source found nothing. DNS lookups
are delegated to a Querier, the only asynchronous collaborator. The package
ships a plain UDP/TCP Querier built on miekg/dns, but anything implementing
the interface can be plugged in.
*/
package gai
