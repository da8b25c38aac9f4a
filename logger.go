package gai

import (
	"github.com/sirupsen/logrus"
)

// Log is a package-global logger used throughout the library. Configuration can be
// changed directly on this instance or the instance replaced.
var Log = logrus.New()

func (q *Query) logger() *logrus.Entry {
	return Log.WithFields(logrus.Fields{
		"host":    q.hostname,
		"service": q.service,
	})
}
