// Command editorconfig resolves EditorConfig properties for one or more
// target files, printing the resulting property set for each.
package main

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	box "github.com/Delta456/box-cli-maker/v2"
	"github.com/jessevdk/go-flags"
	validator "gopkg.in/go-playground/validator.v9"

	"editorconfig-core-go/internal/clilog"
	"editorconfig-core-go/internal/ecerr"
	"editorconfig-core-go/internal/editorconfig"
	"editorconfig-core-go/internal/render"
)

const version = "0.1.0"

type cliOptions struct {
	Version        bool   `short:"v" long:"version" description:"Display version and exit"`
	File           string `short:"f" long:"file" description:"Specify conf filename other than '.editorconfig'"`
	DevelopVersion string `short:"b" long:"develop-version" description:"Version to use as develop version" validate:"omitempty,devversion"`
	JSON           bool   `short:"j" long:"json" description:"Render output as JSON instead of key=value lines"`
	Debug          bool   `long:"debug" description:"Print a stack trace when a target fails to resolve"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	var opts cliOptions
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "editorconfig"

	targets, err := parser.ParseArgs(argv)
	if err != nil {
		if flags.WroteHelp(err) {
			return 0
		}
		return 2
	}

	if opts.Version {
		fmt.Fprintf(stdout, "%s\n", version)
		return 0
	}

	if err := validateOptions(opts); err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return 2
	}

	if len(targets) == 0 {
		printUsageBanner()
		return 0
	}

	logger := clilog.New(opts.Debug)

	exitCode := 0
	for i, target := range targets {
		if len(targets) > 1 {
			fmt.Fprintf(stdout, "[%s]\n", target)
		}

		props, err := editorconfig.Resolve(target, editorconfig.Options{
			ConfigFilename: opts.File,
			DevelopVersion: opts.DevelopVersion,
			Logger:         logger,
		})
		if err != nil {
			exitCode = 1
			fmt.Fprintf(stderr, "%s: %v\n", target, err)
			if opts.Debug {
				if st := ecerr.StackTrace(err); st != nil {
					fmt.Fprintf(stderr, "%+v\n", st)
				}
			}
			continue
		}

		if opts.JSON {
			_ = render.JSON(stdout, props)
		} else {
			_ = render.KeyValues(stdout, props)
		}

		if len(targets) > 1 && i != len(targets)-1 {
			fmt.Fprintln(stdout)
		}
	}

	return exitCode
}

var devVersionPattern = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)

func validateOptions(opts cliOptions) error {
	v := validator.New()
	if err := v.RegisterValidation("devversion", validateDevVersion); err != nil {
		return err
	}
	return v.Struct(opts)
}

func validateDevVersion(fl validator.FieldLevel) bool {
	return devVersionPattern.MatchString(fl.Field().String())
}

func printUsageBanner() {
	bx := box.New(box.Config{Px: 4, Py: 1})
	bx.Println("editorconfig", strings.Join([]string{
		"Usage: editorconfig [OPTIONS] FILE...",
		"",
		"Resolves EditorConfig properties for each target file.",
	}, "\n"))
}
