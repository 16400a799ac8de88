// Package cssvalue assembles correctly punctuated CSS function values from
// ordered optional fragments. Values are opaque strings; the package only
// guarantees separator placement, never CSS syntax.
package cssvalue

import "strings"

// JoinArguments builds a CSS function argument list from ordered optional
// leading fragments and a final fragment. Leading fragments keep their order
// and join with single spaces; absent fragments contribute nothing. The
// final fragment follows exactly one ", " when any leading fragment is
// present, and is the sole content when none is. The result never carries a
// double separator, a dangling comma, or surrounding whitespace.
func JoinArguments(leading []string, final string) string {
	var b strings.Builder
	wrote := false
	for _, fragment := range leading {
		if fragment == "" {
			continue
		}
		if wrote {
			b.WriteByte(' ')
		}
		b.WriteString(fragment)
		wrote = true
	}

	if final == "" {
		return b.String()
	}
	if !wrote {
		return final
	}

	b.WriteString(", ")
	b.WriteString(final)
	return b.String()
}

// Function wraps an argument list in a CSS function call.
func Function(name, args string) string {
	return name + "(" + args + ")"
}
