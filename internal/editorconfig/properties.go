package editorconfig

import (
	"strconv"
	"strings"
)

// knownKeys lowercases alongside their values; any other key passes
// through the accumulator with its value untouched.
var knownKeys = map[string]bool{
	"root":                     true,
	"indent_style":             true,
	"indent_size":              true,
	"tab_width":                true,
	"end_of_line":              true,
	"charset":                  true,
	"trim_trailing_whitespace": true,
	"insert_final_newline":     true,
}

// IndentSize is indent_size's projection: either a literal width or the
// "use tab_width instead" sentinel produced by the value "tab".
type IndentSize struct {
	UseTabWidth bool
	N           int
}

// Properties is the normalized, ordered result of a resolve call: the
// raw key/value accumulator plus strongly-typed projections for the
// recognized keys.
type Properties struct {
	values map[string]string
	order  []string

	// Bogus maps a recognized key to its unparsable raw value; the
	// corresponding strong projection is omitted for that key.
	Bogus map[string]string
}

func newProperties() *Properties {
	return &Properties{values: make(map[string]string), Bogus: make(map[string]string)}
}

func (p *Properties) set(key, value string) {
	if _, exists := p.values[key]; !exists {
		p.order = append(p.order, key)
	}
	p.values[key] = value
}

// Get returns the raw (already lower-cased, for recognized keys) value
// for key.
func (p *Properties) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Keys returns every surviving key in first-insertion order.
func (p *Properties) Keys() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// IndentStyle projects indent_style, reporting it as bogus if it is
// neither "tab" nor "space".
func (p *Properties) IndentStyle() (string, bool) {
	v, ok := p.values["indent_style"]
	if !ok {
		return "", false
	}
	if v != "tab" && v != "space" {
		p.Bogus["indent_style"] = v
		return "", false
	}
	return v, true
}

// IndentSize projects indent_size: a positive integer, or UseTabWidth
// when the raw value is the literal "tab".
func (p *Properties) IndentSize() (IndentSize, bool) {
	v, ok := p.values["indent_size"]
	if !ok {
		return IndentSize{}, false
	}
	if v == "tab" {
		return IndentSize{UseTabWidth: true}, true
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		p.Bogus["indent_size"] = v
		return IndentSize{}, false
	}
	return IndentSize{N: n}, true
}

// TabWidth projects tab_width as a positive integer.
func (p *Properties) TabWidth() (int, bool) {
	v, ok := p.values["tab_width"]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		p.Bogus["tab_width"] = v
		return 0, false
	}
	return n, true
}

// EndOfLine projects end_of_line, one of "lf", "cr", "crlf".
func (p *Properties) EndOfLine() (string, bool) {
	v, ok := p.values["end_of_line"]
	if !ok {
		return "", false
	}
	switch v {
	case "lf", "cr", "crlf":
		return v, true
	default:
		p.Bogus["end_of_line"] = v
		return "", false
	}
}

// Charset projects charset, one of the five values EditorConfig defines.
func (p *Properties) Charset() (string, bool) {
	v, ok := p.values["charset"]
	if !ok {
		return "", false
	}
	switch v {
	case "latin1", "utf-8", "utf-8-bom", "utf-16be", "utf-16le":
		return v, true
	default:
		p.Bogus["charset"] = v
		return "", false
	}
}

// TrimTrailingWhitespace projects trim_trailing_whitespace as a bool.
func (p *Properties) TrimTrailingWhitespace() (bool, bool) {
	return p.projectBool("trim_trailing_whitespace")
}

// InsertFinalNewline projects insert_final_newline as a bool.
func (p *Properties) InsertFinalNewline() (bool, bool) {
	return p.projectBool("insert_final_newline")
}

func (p *Properties) projectBool(key string) (bool, bool) {
	v, ok := p.values[key]
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.Bogus[key] = v
		return false, false
	}
	return b, true
}

// normalize lowers keys (and, for recognized keys, values), applies the
// indent_style=tab -> indent_size=tab inference, strips the root marker,
// and discards empty keys/values. accumKeys preserves the order
// properties were first written in, which the resolver builds as it
// walks matching sections.
func normalize(accum map[string]string, accumKeys []string, developVersion string) *Properties {
	p := newProperties()

	for _, rawKey := range accumKeys {
		value := accum[rawKey]
		key := strings.ToLower(rawKey)

		if key == "" || value == "" {
			continue
		}

		if knownKeys[key] {
			value = strings.ToLower(value)
		}

		if key == "root" {
			continue
		}

		p.set(key, value)
	}

	if style, ok := p.values["indent_style"]; ok && style == "tab" {
		if _, hasSize := p.values["indent_size"]; !hasSize && supportsIndentSizeTabInference(developVersion) {
			p.set("indent_size", "tab")
		}
	}

	return p
}

// supportsIndentSizeTabInference implements the develop_version gate for
// the indent_size=tab inference feature, introduced at core version
// 0.12.0. An empty developVersion means "use latest behavior".
func supportsIndentSizeTabInference(developVersion string) bool {
	if developVersion == "" {
		return true
	}
	return compareVersions(developVersion, "0.12.0") >= 0
}

// compareVersions compares two dotted numeric version strings, returning
// -1, 0, or 1. Non-numeric or missing components compare as 0.
func compareVersions(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) || i < len(bs); i++ {
		var av, bv int
		if i < len(as) {
			av, _ = strconv.Atoi(as[i])
		}
		if i < len(bs) {
			bv, _ = strconv.Atoi(bs[i])
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}
	return 0
}
