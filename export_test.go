package polished

// setValidationEnabled overrides the cached runtime mode for a test and
// returns a restore function.
func setValidationEnabled(enabled bool) (restore func()) {
	prev := validationEnabled
	validationEnabled = enabled
	return func() { validationEnabled = prev }
}
