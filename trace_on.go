//go:build ipv6trace

package ipv6addr

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var traceLog = logrus.WithField("component", "ipv6addr")

func traceState(format string, args ...interface{}) {
	traceLog.Debug(fmt.Sprintf(format, args...))
}

func traceTransition(from, to state, ev eventClass) {
	traceLog.WithFields(logrus.Fields{
		"from":  from,
		"to":    to,
		"event": ev,
	}).Debug("state transition")
}
