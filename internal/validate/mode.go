package validate

import (
	"os"
	"sync"
)

// EnvVar selects the runtime mode. When it holds "production" the validation
// phase is skipped entirely and mixins always attempt their computation.
const EnvVar = "POLISHED_ENV"

var (
	modeOnce sync.Once
	enabled  bool
)

// Enabled reports whether validation runs in this process. The mode is
// resolved once on first use and never re-read, so it cannot change during a
// process's lifetime.
func Enabled() bool {
	modeOnce.Do(func() {
		enabled = os.Getenv(EnvVar) != "production"
	})
	return enabled
}
