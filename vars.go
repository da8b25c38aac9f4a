package gai

import (
	"expvar"
)

var (
	varQueries  = getVarInt("queries")
	varEntries  = getVarInt("entries")
	varFailures = getVarMap("failures")
)

// Get an *expvar.Int with the given path.
func getVarInt(name string) *expvar.Int {
	fullname := "gai." + name
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Int)
	}
	return expvar.NewInt(fullname)
}

// Get an *expvar.Map with the given path.
func getVarMap(name string) *expvar.Map {
	fullname := "gai." + name
	if v := expvar.Get(fullname); v != nil {
		return v.(*expvar.Map)
	}
	return expvar.NewMap(fullname)
}
