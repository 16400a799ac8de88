// Package validate implements the argument-checking framework shared by all
// mixins: declarative type rules, custom invariants, and the top-level
// calling-convention gate. Checks never panic and never alter a mixin's
// arguments; failures surface as a structured Result plus a diagnostic log
// entry, and in production mode the whole phase is skipped.
package validate

// TypeCheck evaluates every rule against the named module's arguments and
// returns the aggregated outcome. Rules are not short-circuited: a caller
// sees all violations from a single pass. Missing required values report the
// rule's Required message; present values of the wrong shape report a
// generic type mismatch.
func TypeCheck(module string, rules []Rule) Result {
	var res Result
	for _, rule := range rules {
		if !present(rule.Value) {
			if rule.Required != "" {
				res.addf("%s: %s", module, rule.Required)
			}
			continue
		}
		if got := TagOf(rule.Value); got != rule.Type {
			res.addf("%s: expected type %s, got type %s", module, rule.Type, got)
		}
	}
	report(res)
	return res
}

// CustomCheck evaluates a single custom invariant for the named module.
func CustomCheck(module string, rule Custom) Result {
	var res Result
	if !rule.Enforce {
		res.addf("%s: %s", module, rule.Message)
	}
	report(res)
	return res
}

// Module guards a mixin's top-level calling convention and invokes fn with
// the original arguments. An arity mismatch is reported and skips the
// configuration-type check; either way fn is still invoked — the mixin's own
// configuration validation is the actual gate, this layer is observability
// only.
func Module(desc Descriptor, fn func(args ...any) any, args ...any) any {
	if Enabled() {
		if len(args) != desc.Exactly {
			var res Result
			res.addf("%s: expected %d argument(s), got %d", desc.Module, desc.Exactly, len(args))
			report(res)
		} else if len(args) > 0 {
			rule := desc.Config
			rule.Value = args[0]
			TypeCheck(desc.Module, []Rule{rule})
		}
	}
	return fn(args...)
}
