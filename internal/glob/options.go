// Package glob implements the EditorConfig pattern language: brace
// expansion, pattern compilation, and matching. It is a from-scratch,
// non-regexp engine: brace expansion, negation, comment/empty patterns
// and match-base behave the way a shell glob library would, but the
// match engine itself walks compiled elements directly rather than
// building a regexp.
package glob

// Options enumerates the recognized toggles for compiling and matching a
// Glob. The zero value is the engine's default behavior: no brace
// suppression, no globstar suppression, case-sensitive, dot-hiding rules
// active.
type Options struct {
	// AllowWindowsPaths treats '\' as a path separator in matched input.
	AllowWindowsPaths bool

	// AllowWindowsPathsInPatterns replaces '\' with '/' in the pattern
	// before parsing it. Setting this disables pattern escaping, since
	// there is no backslash left to introduce an escape sequence.
	AllowWindowsPathsInPatterns bool

	// Dot allows a '.'-prefixed path segment to be matched by '*', '?'
	// or '**'. The segments "." and ".." are never matched regardless.
	Dot bool

	// FlipNegate returns the match hit verbatim instead of inverting it
	// for a negated pattern.
	FlipNegate bool

	// IgnoreCase performs ordinal case-insensitive comparison.
	IgnoreCase bool

	// MatchBase matches a pattern with no path separator against the
	// basename of a slashed input instead of the full input.
	MatchBase bool

	// NoBrace disables '{a,b}' and '{1..3}' expansion.
	NoBrace bool

	// NoComment disables treating a leading '#' as a comment marker.
	NoComment bool

	// NoGlobstar downgrades '**' to the same behavior as '*'.
	NoGlobstar bool

	// NoNegate disables treating a leading '!' as negation.
	NoNegate bool

	// NoNull, when set, asks callers to fall back to the raw pattern
	// string when nothing matched. The glob package itself does not
	// implement list filtering, so this flag is carried for callers
	// that do (see internal/editorconfig, which does not use it, since
	// editorconfig resolution never falls back to the pattern itself).
	NoNull bool
}
