package ini

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	commentLineRe = regexp.MustCompile(`^\s*[#;](.*)$`)
	propertyLineRe = regexp.MustCompile(`^\s*([A-Za-z0-9._-]+)\s*[=:]\s*(.*?)\s*([#;].*)?$`)
	sectionLineRe  = regexp.MustCompile(`^\s*\[(([^#;]|\\#|\\;)+)\]\s*([#;].*)?$`)
)

// Parse reads a whole config file from r and returns its Global section,
// named Sections, and root marker. Lines that match none of the three
// grammars are skipped silently; the line counter still advances, per
// the file format's forgiving parse policy.
func Parse(r io.Reader) (*File, error) {
	f := &File{Global: newSection("Global")}
	current := f.Global

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		raw := scanner.Text()

		if m := commentLineRe.FindStringSubmatch(raw); m != nil {
			current.Lines = append(current.Lines, Line{Kind: LineComment, Number: lineNum, Text: m[1]})
			continue
		}

		if m := propertyLineRe.FindStringSubmatch(raw); m != nil {
			key, value := m[1], m[2]
			current.Set(key, value, lineNum)
			current.Lines = append(current.Lines, Line{Kind: LineProperty, Number: lineNum, Key: key, Value: value})
			continue
		}

		if m := sectionLineRe.FindStringSubmatch(raw); m != nil {
			name := unescapeSectionName(m[1])
			section := newSection(name)
			section.Lines = append(section.Lines, Line{Kind: LineSection, Number: lineNum, Name: name})
			f.Sections = append(f.Sections, section)
			current = section
			continue
		}

		// whitespace-only or otherwise unrecognized: skip silently.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if p, ok := f.Global.Get("root"); ok {
		if b, err := strconv.ParseBool(strings.ToLower(p.Value)); err == nil {
			f.IsRoot = b
		}
	}

	return f, nil
}

func unescapeSectionName(name string) string {
	name = strings.ReplaceAll(name, `\#`, "#")
	name = strings.ReplaceAll(name, `\;`, ";")
	return name
}
