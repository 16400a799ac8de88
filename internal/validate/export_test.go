package validate

// setEnabled overrides the resolved runtime mode for a test and returns a
// restore function.
func setEnabled(v bool) (restore func()) {
	Enabled()
	prev := enabled
	enabled = v
	return func() { enabled = prev }
}
