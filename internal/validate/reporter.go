package validate

import (
	"github.com/cantyjeffrey/polished/internal/logger"
)

// diag is the diagnostic side channel for validation failures. Reporting
// never influences a mixin's return value; it exists so a developer sees
// every violation without the library ever throwing.
var diag = defaultReporter()

func defaultReporter() *logger.Logger {
	log, err := logger.New(logger.Options{Level: "warn", HumanReadable: true})
	if err != nil {
		return nil
	}
	return log
}

// SetReporter replaces the diagnostic logger. Wire this once at startup;
// access is not synchronized.
func SetReporter(log *logger.Logger) {
	diag = log
}

func report(res Result) {
	if res.Ok() {
		return
	}
	for _, violation := range res.Violations() {
		diag.Warn(violation)
	}
}
