package glob

// braceExpansion implements shell-style brace expansion: {a,b,c} choice sets
// and {1..5}/{a..e} ranges, including nested groups.

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
)

var (
	escSlash  = "\000SLASH" + strconv.Itoa(int(rand.Int31())) + "\000"
	escOpen   = "\000OPEN" + strconv.Itoa(int(rand.Int31())) + "\000"
	escClose  = "\000CLOSE" + strconv.Itoa(int(rand.Int31())) + "\000"
	escComma  = "\000COMMA" + strconv.Itoa(int(rand.Int31())) + "\000"
	escPeriod = "\000PERIOD" + strconv.Itoa(int(rand.Int31())) + "\000"
)

// braceExpansion returns every string produced by expanding str's brace
// groups, or []string{str} if it has none.
func braceExpansion(str string) []string {
	result := []string{}
	if len(str) == 0 {
		return result
	}

	// A leading "{}" is preserved verbatim at the top level: "{},a}b" does
	// not expand, but "a{},b}c" expands to ["a}c", "abc"]. Matches Bash's
	// own quirky handling of this case.
	if strings.HasPrefix(str, "{}") {
		str = "\\{\\}" + str[2:]
	}

	for _, item := range expand(escapeBraces(str), true) {
		result = append(result, unescapeBraces(item))
	}

	return result
}

func escapeBraces(str string) string {
	str = strings.Join(strings.Split(str, "\\\\"), escSlash)
	str = strings.Join(strings.Split(str, "\\{"), escOpen)
	str = strings.Join(strings.Split(str, "\\}"), escClose)
	str = strings.Join(strings.Split(str, "\\,"), escComma)
	str = strings.Join(strings.Split(str, "\\."), escPeriod)

	return str
}

func unescapeBraces(str string) string {
	str = strings.Join(strings.Split(str, escSlash), "\\")
	str = strings.Join(strings.Split(str, escOpen), "{")
	str = strings.Join(strings.Split(str, escClose), "}")
	str = strings.Join(strings.Split(str, escComma), ",")
	str = strings.Join(strings.Split(str, escPeriod), ".")

	return str
}

// Basically just str.split(","), but handling cases
// where we have nested braced sections, which should be
// treated as individual members, like {a,{b,c},d}
func parseCommaParts(str string) []string {
	if len(str) == 0 {
		return []string{""}
	}

	m, err := BalancedMatch("{", "}", str)
	if err != nil {
		return strings.Split(str, ",")
	}

	parts := []string{}

	p := strings.Split(m.Pre, ",")
	p[len(p)-1] += "{" + m.Body + "}"
	postParts := parseCommaParts(m.Post)
	if len(m.Post) != 0 {
		var first string
		first, postParts = postParts[0], postParts[1:]

		p[len(p)-1] += first
		p = append(p, postParts...)
	}

	return append(parts, p...)
}

func numeric(str string) int {
	i, err := strconv.Atoi(str)
	if err == nil {
		return i
	}
	return int(str[0])
}

func embrace(str string) string {
	return "{" + str + "}"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
func abs(a int) int {
	if a < 0 {
		return 0 - a
	}
	return a
}

func isPadded(el string) bool {
	v, _ := regexp.MatchString("^-?0\\d", el)
	return v
}

func lte(i, y int) bool {
	return i <= y
}

func gte(i, y int) bool {
	return i >= y
}

func expand(str string, isTop bool) []string {
	expansions := []string{}

	m, err := BalancedMatch("{", "}", str)

	if err != nil || strings.HasSuffix(m.Pre, "$") {
		return []string{str}
	}

	isNumericSequence, err := regexp.MatchString("^-?\\d+\\.\\.-?\\d+(?:\\.\\.-?\\d+)?$", m.Body)
	isAlphaSequence, err := regexp.MatchString("^[a-zA-Z]\\.\\.[a-zA-Z](?:\\.\\.-?\\d+)?$", m.Body)
	isSequence := isNumericSequence || isAlphaSequence
	isOptions := strings.Index(m.Body, ",") >= 0

	if !isSequence && !isOptions {
		// {a},b}
		if ok, _ := regexp.MatchString(",.*\\}", m.Post); ok {
			str = m.Pre + "{" + m.Body + escClose + m.Post
			return expand(str, false)
		}
		return []string{str}
	}

	var n []string

	if isSequence {
		n = strings.SplitN(m.Body, "..", 3)
	} else {
		n = parseCommaParts(m.Body)
		if len(n) == 1 {
			// x{{a,b}}y ==> x{a}y x{b}y
			nv := n[0]
			n = []string{}
			for _, item := range expand(nv, false) {
				n = append(n, embrace(item))
			}

			if len(n) == 1 {
				var post []string
				if len(m.Post) != 0 {
					post = expand(m.Post, false)
				} else {
					post = []string{""}
				}

				vals := []string{}
				for _, item := range post {
					vals = append(vals, m.Pre+n[0]+item)
				}

				return vals
			}
		}
	}

	// at this point, n is the parts, and we know it's not a comma set
	// with a single entry.

	// no need to expand pre, since it is guaranteed to be free of brace-sets
	pre := m.Pre
	var post []string
	if len(m.Post) != 0 {
		post = expand(m.Post, false)
	} else {
		post = []string{""}
	}

	N := []string{}

	if isSequence {
		x := numeric(n[0])
		y := numeric(n[1])
		width := min(len(n[0]), len(n[1]))

		var incr int
		if len(n) == 3 {
			incr = abs(numeric(n[2]))
		} else {
			incr = 1
		}

		test := lte
		reverse := y < x
		if reverse {
			incr *= -1
			test = gte
		}

		pad := false
		for _, item := range n {
			pad = pad || isPadded(item)
		}

		for i := x; test(i, y); i += incr {
			var c string
			if isAlphaSequence {
				c = string(rune(i))
				if c == "\\" {
					c = ""
				}
			} else {
				c = strconv.Itoa(i)
				if pad {
					need := width - len(c)
					if need > 0 {
						if i < 0 {
							c = "-" + strings.Repeat("0", need-1) + c
						} else {
							c = strings.Repeat("0", need) + c
						}
					}
				}
			}

			N = append(N, c)
		}
	} else {
		for _, item := range n {
			for _, e := range expand(item, false) {
				N = append(N, e)
			}
		}
	}

	for _, Nitem := range N {
		for _, postItem := range post {
			expansion := pre + Nitem + postItem
			if isTop || isSequence || len(expansion) != 0 {
				expansions = append(expansions, expansion)
			}
		}
	}

	return expansions
}
