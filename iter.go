package gai

// iterFamily walks the address families to try. When the hints pin a
// family, it is the only iteration; otherwise the configured preference
// list is used. The cursor resets whenever a new source is attempted.
func (q *Query) iterFamily(first bool) (Family, bool) {
	if first {
		q.familyIdx = 0
		if q.hints.Family != Unspec {
			return q.hints.Family, true
		}
		return q.curFamily()
	}
	if q.hints.Family != Unspec {
		return Unspec, false
	}
	q.familyIdx++
	return q.curFamily()
}

func (q *Query) curFamily() (Family, bool) {
	families := q.cfg.families()
	if q.familyIdx >= len(families) {
		return Unspec, false
	}
	return families[q.familyIdx], true
}

// nextSource advances to the next configured source, reporting exhaustion
// once the list runs out.
func (q *Query) nextSource() (Source, bool) {
	q.srcIdx++
	sources := q.cfg.sources()
	if q.srcIdx >= len(sources) {
		return 0, false
	}
	return sources[q.srcIdx], true
}

func (q *Query) curSource() Source {
	return q.cfg.sources()[q.srcIdx]
}
