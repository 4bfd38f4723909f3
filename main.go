package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/tawacheck/emit"
	"github.com/pontaoski/tawacheck/project"
	"github.com/pontaoski/tawacheck/resolve"
	"github.com/pontaoski/tawacheck/syntax"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/tawacheck", "main")

// sourceFiles picks the files of the unit: args when given, otherwise the
// sources of the module in dir. The unit is named after the module, or after
// the first file when there is no module name.
func sourceFiles(dir string, args []string) (string, []string, error) {
	mod, hasModule, err := project.Load(dir)
	if err != nil {
		return "", nil, err
	}

	files := args
	name := mod.Package
	if len(files) == 0 {
		if !hasModule {
			return "", nil, tracerr.Errorf("no files given and no %s in this directory", project.FileName)
		}
		files, err = mod.SourceFiles(dir)
		if err != nil {
			return "", nil, err
		}
		if len(files) == 0 {
			return "", nil, tracerr.Errorf("no sources match %s", strings.Join(mod.Sources, ", "))
		}
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(files[0]), filepath.Ext(files[0]))
	}

	return name, files, nil
}

// loadUnit parses and resolves the files named on the command line, or the
// module's sources when there are none, as one compilation unit.
func loadUnit(c *cli.Context) (*resolve.Unit, error) {
	name, files, err := sourceFiles(".", c.Args().Slice())
	if err != nil {
		return nil, err
	}

	plog.Debugf("parsing %d file(s) as %q", len(files), name)
	unit, err := syntax.ParseFiles(name, files)
	if err != nil {
		return nil, err
	}

	u, diags := resolve.Resolve(unit)
	if diags.HasErrors() {
		for _, d := range diags {
			fmt.Fprintln(os.Stderr, d)
		}
		return u, cli.Exit(fmt.Sprintf("%d error(s)", len(diags)), 1)
	}
	return u, nil
}

func setupLogging(c *cli.Context) error {
	verbose := c.Bool("verbose")
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, verbose))

	level := capnslog.INFO
	if mod, ok, err := project.Load("."); err == nil && ok && mod.LogLevel != "" {
		parsed, err := capnslog.ParseLevel(mod.LogLevel)
		if err != nil {
			return cli.Exit(fmt.Sprintf("bad LogLevel in %s: %s", project.FileName, err), 1)
		}
		level = parsed
	}
	if verbose {
		level = capnslog.DEBUG
	}
	capnslog.SetGlobalLogLevel(level)

	return nil
}

func main() {
	app := &cli.App{
		Name:  "tawacheck",
		Usage: "resolve and type-check a compilation unit",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "debug logging and error stack traces",
			},
		},
		Before: setupLogging,
		ExitErrHandler: func(c *cli.Context, err error) {
			if err == nil {
				return
			}
			code := 1
			if exit, ok := err.(cli.ExitCoder); ok {
				code = exit.ExitCode()
			}
			if c.Bool("verbose") {
				tracerr.PrintSourceColor(err)
			} else if msg := err.Error(); msg != "" {
				fmt.Fprintln(os.Stderr, "error:", msg)
			}
			os.Exit(code)
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "write a module file into the current directory",
				ArgsUsage: "<name>",
				Action: func(c *cli.Context) error {
					name := c.Args().First()
					if name == "" {
						return cli.Exit("no module name provided", 1)
					}
					return project.Default(name).Save(".")
				},
			},
			{
				Name:      "check",
				Usage:     "report resolution and type errors",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "print the resolved tree",
					},
				},
				Action: func(c *cli.Context) error {
					u, err := loadUnit(c)
					if c.Bool("dump") && u != nil {
						repr.Println(u)
					}
					return err
				},
			},
			{
				Name:      "typeinfo",
				Usage:     "print function signatures and struct layouts as JSON",
				ArgsUsage: "[files...]",
				Action: func(c *cli.Context) error {
					u, err := loadUnit(c)
					if err != nil {
						return err
					}
					data, err := emit.TypeInfoOf(u).JSON()
					if err != nil {
						return err
					}
					fmt.Println(string(data))
					return nil
				},
			},
			{
				Name:      "emit",
				Usage:     "lower declarations to LLVM IR",
				ArgsUsage: "[files...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "write the module to `FILE` instead of stdout",
					},
				},
				Action: func(c *cli.Context) error {
					u, err := loadUnit(c)
					if err != nil {
						return err
					}
					m, err := emit.Declarations(u)
					if err != nil {
						return err
					}

					out := c.String("output")
					if out == "" {
						fmt.Print(m.String())
						return nil
					}
					if err := ioutil.WriteFile(out, []byte(m.String()), 0644); err != nil {
						return tracerr.Wrap(err)
					}
					return nil
				},
			},
		},
	}

	app.Run(os.Args)
}
