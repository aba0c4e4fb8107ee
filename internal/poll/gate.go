package poll

import (
	"strings"
	"time"

	"github.com/qcsc/slurmled/internal/errors"
	"github.com/qcsc/slurmled/internal/logger"
	"golang.org/x/time/rate"
)

// failureGate rate-limits log lines for repeated failures of the same
// class so a dead remote host can't flood the log at poll cadence. A
// failure class seen for the first time — or seen again after the source
// recovered — always logs.
type failureGate struct {
	every      time.Duration
	log        logger.Logger
	limiters   map[string]*rate.Limiter
	suppressed map[string]int
}

func newFailureGate(every time.Duration, log logger.Logger) *failureGate {
	return &failureGate{
		every:      every,
		log:        log,
		limiters:   make(map[string]*rate.Limiter),
		suppressed: make(map[string]int),
	}
}

// report logs a source failure, suppressing repeats of the same class to
// at most one line per window.
func (g *failureGate) report(source string, err error) {
	class := source + ": " + errors.Class(err)

	lim, known := g.limiters[class]
	if !known {
		lim = rate.NewLimiter(rate.Every(g.every), 1)
		g.limiters[class] = lim
	}
	if g.every <= 0 || lim.Allow() {
		if n := g.suppressed[class]; n > 0 {
			g.log.Warn("%s failed (%d repeats suppressed): %v", source, n, err)
			g.suppressed[class] = 0
		} else {
			g.log.Warn("%s failed: %v", source, err)
		}
		return
	}
	g.suppressed[class]++
	g.log.Debug("%s failed (suppressed): %v", source, err)
}

// recovered clears the gate for a source after a successful query, so the
// next failure of any class logs immediately again.
func (g *failureGate) recovered(source string) {
	prefix := source + ": "
	for class := range g.limiters {
		if strings.HasPrefix(class, prefix) {
			delete(g.limiters, class)
			delete(g.suppressed, class)
		}
	}
}
