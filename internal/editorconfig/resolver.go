package editorconfig

import (
	"os"
	"path/filepath"
	"strings"

	"editorconfig-core-go/internal/clilog"
	"editorconfig-core-go/internal/ecerr"
	"editorconfig-core-go/internal/glob"
	"editorconfig-core-go/internal/ini"
)

// DefaultConfigFilename is the name searched for at each directory level
// when Options.ConfigFilename is empty.
const DefaultConfigFilename = ".editorconfig"

// Options configures a single Resolve call. Resolve holds no state of
// its own between calls; every field here is read-only input.
type Options struct {
	// ConfigFilename overrides the discovered filename (".editorconfig"
	// by default), matching the CLI's -f flag.
	ConfigFilename string

	// DevelopVersion gates version-sensitive inference behaviors, such
	// as indent_size=tab, matching the CLI's -b flag.
	DevelopVersion string

	// Glob carries the match options every section's pattern is
	// compiled under.
	Glob glob.Options

	// Logger receives debug-level tracing of the directory walk and
	// section matches; a nil Logger disables tracing.
	Logger clilog.Logger
}

// Resolve walks upward from targetPath's directory, collecting and
// matching .editorconfig sections, and returns the normalized property
// map for targetPath.
func Resolve(targetPath string, opts Options) (*Properties, error) {
	logger := opts.Logger
	if logger == nil {
		logger = clilog.New(false)
	}

	abs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, ecerr.Wrap("resolve", targetPath, err)
	}

	configFilename := opts.ConfigFilename
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	files, err := collectConfigFiles(filepath.Dir(abs), configFilename, logger)
	if err != nil {
		return nil, err
	}

	accum := map[string]string{}
	var order []string

	slashTarget := filepath.ToSlash(abs)

	for _, f := range files {
		for _, sec := range f.Sections {
			pattern := anchorPattern(sec.Name, f.Dir)
			g := glob.New(pattern, opts.Glob)
			if !g.IsMatch(slashTarget) {
				continue
			}
			logger.Debug("section matched", "file", f.Path, "section", sec.Name, "pattern", pattern)
			for _, key := range sec.Keys() {
				prop, _ := sec.Get(key)
				if _, exists := accum[key]; !exists {
					order = append(order, key)
				}
				accum[key] = prop.Value
			}
		}
	}

	return normalize(accum, order, opts.DevelopVersion), nil
}

// collectConfigFiles walks from dir up to the filesystem root, parsing
// every configFilename it finds, and stops (inclusively) at the first
// root file. The result is ordered outermost-first, matching the
// accumulation order last-writer-wins semantics require.
func collectConfigFiles(dir, configFilename string, logger clilog.Logger) ([]*ini.File, error) {
	var collected []*ini.File

	current := dir
walk:
	for {
		if !pathIsInside(dir, current) {
			return nil, ecerr.Wrapf("read config", dir, "directory walk left the tree rooted at %s", dir)
		}

		candidate := filepath.Join(current, configFilename)

		f, err := parseConfigFile(candidate)
		switch {
		case err == nil:
			f.Path = candidate
			f.Dir = current
			collected = append(collected, f)
			logger.Debug("loaded config", "path", candidate, "root", f.IsRoot)
			if f.IsRoot {
				break walk
			}
		case os.IsNotExist(err):
			// no config file at this level, keep walking up.
		default:
			return nil, ecerr.Wrap("read config", candidate, err)
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	reversed := make([]*ini.File, len(collected))
	for i, f := range collected {
		reversed[len(collected)-1-i] = f
	}
	return reversed, nil
}

func parseConfigFile(path string) (*ini.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	return ini.Parse(fh)
}

// anchorPattern turns a section name into the fully-qualified glob
// pattern tested against the target's absolute, forward-slashed path.
func anchorPattern(name, dir string) string {
	slashDir := filepath.ToSlash(dir)

	if strings.Contains(name, "/") {
		trimmed := strings.TrimPrefix(name, "/")
		return slashDir + "/" + trimmed
	}
	return slashDir + "/**/" + name
}
