package glob

// segStart reports whether pi is the first rune of a path segment: either
// the very start of input, or the rune right before it is a separator.
func segStart(input []rune, pi int, opts Options) bool {
	return pi == 0 || isSeparatorRune(input[pi-1], opts)
}

// segmentEnd returns the index just past the segment that starts at start.
func segmentEnd(input []rune, start int, opts Options) int {
	end := start
	for end < len(input) && !isSeparatorRune(input[end], opts) {
		end++
	}
	return end
}

// blockedDotSegment reports whether the segment starting at start is
// exactly "." or "..". Such segments are never matched by a wildcard,
// regardless of the Dot option.
func blockedDotSegment(input []rune, start int, opts Options) bool {
	end := segmentEnd(input, start, opts)
	seg := input[start:end]
	if len(seg) == 1 && seg[0] == '.' {
		return true
	}
	if len(seg) == 2 && seg[0] == '.' && seg[1] == '.' {
		return true
	}
	return false
}

// hiddenStart reports whether pi sits at the start of a segment whose
// first rune is '.', i.e. a candidate for the Dot option's gate.
func hiddenStart(input []rune, pi int, opts Options) bool {
	return pi < len(input) && segStart(input, pi, opts) && input[pi] == '.'
}

// matchElements recursively attempts to consume input[pi:] against
// elements[ei:]. It returns true the first time a full consumption is
// found; there is no need to find all matches, only whether one exists.
func matchElements(elements []patternElement, ei int, input []rune, pi int, opts Options) bool {
	if ei == len(elements) {
		return pi == len(input)
	}

	e := elements[ei]

	switch e.kind {
	case elLiteral:
		end := pi + len(e.literal)
		if end > len(input) {
			return false
		}
		if !runesEqualFold(input[pi:end], e.literal, opts.IgnoreCase) {
			return false
		}
		return matchElements(elements, ei+1, input, end, opts)

	case elSeparator:
		if pi >= len(input) || !isSeparatorRune(input[pi], opts) {
			return false
		}
		return matchElements(elements, ei+1, input, pi+1, opts)

	case elOneChar:
		if pi >= len(input) || isSeparatorRune(input[pi], opts) {
			return false
		}
		if segStart(input, pi, opts) {
			if blockedDotSegment(input, pi, opts) {
				return false
			}
			if input[pi] == '.' && !opts.Dot {
				return false
			}
		}
		var ok bool
		if e.class == nil {
			ok = true
		} else {
			ok = runeInClass(input[pi], e.class, opts.IgnoreCase)
			if e.negate {
				ok = !ok
			}
		}
		if !ok {
			return false
		}
		return matchElements(elements, ei+1, input, pi+1, opts)

	case elAsterisk:
		if e.double && !opts.NoGlobstar {
			return matchGlobstar(elements, ei, input, pi, opts)
		}
		return matchSimpleStar(elements, ei, input, pi, opts)
	}

	return false
}

// matchSimpleStar tries every run length of non-separator runes that '*'
// could swallow at pi, longest first is not required for correctness, so
// it tries shortest first for simplicity.
func matchSimpleStar(elements []patternElement, ei int, input []rune, pi int, opts Options) bool {
	limit := segmentEnd(input, pi, opts)

	blocked := false
	if segStart(input, pi, opts) {
		if blockedDotSegment(input, pi, opts) {
			blocked = true
		}
	}
	hidden := hiddenStart(input, pi, opts) && !opts.Dot

	maxLen := limit - pi
	if blocked || hidden {
		maxLen = 0
	}

	for l := 0; l <= maxLen; l++ {
		if matchElements(elements, ei+1, input, pi+l, opts) {
			return true
		}
	}
	return false
}

// matchGlobstar tries every possible number of whole path segments (plus
// an optional trailing zero-or-more non-separator run) that '**' could
// swallow at pi, and special-cases the idiom "a/**/b" matching "a/b" by
// also trying to absorb the separator element that immediately follows a
// zero-length globstar swallow.
func matchGlobstar(elements []patternElement, ei int, input []rune, pi int, opts Options) bool {
	if matchElements(elements, ei+1, input, pi, opts) {
		return true
	}

	if ei+1 < len(elements) && elements[ei+1].kind == elSeparator {
		if matchElements(elements, ei+2, input, pi, opts) {
			return true
		}
	}

	if pi >= len(input) {
		return false
	}

	if hiddenStart(input, pi, opts) && !opts.Dot {
		return false
	}
	if segStart(input, pi, opts) && blockedDotSegment(input, pi, opts) {
		return false
	}

	k := pi
	for k < len(input) && !isSeparatorRune(input[k], opts) {
		k++
		if matchElements(elements, ei+1, input, k, opts) {
			return true
		}
	}
	if k >= len(input) {
		return false
	}

	return matchGlobstar(elements, ei, input, k+1, opts)
}

// matchCase runs a single compiled alternative against input, applying
// trailing-slash forgiveness and MatchBase repositioning.
func matchCase(c compiledCase, input string, opts Options) bool {
	runes := []rune(input)

	for len(runes) > 0 && isSeparatorRune(runes[len(runes)-1], opts) {
		runes = runes[:len(runes)-1]
	}

	if opts.MatchBase && !c.hasPathSeparators {
		base := runes
		for i := len(runes) - 1; i >= 0; i-- {
			if isSeparatorRune(runes[i], opts) {
				base = runes[i+1:]
				break
			}
		}
		runes = base
	}

	return matchElements(c.elements, 0, runes, 0, opts)
}
