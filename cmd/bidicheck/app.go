package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"

	cli "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"bidimap/bidi"
	"bidimap/internal/analyze"
	"bidimap/internal/config"
	"bidimap/internal/logger"
	"bidimap/internal/report"
)

// exitPartial is returned by check in strict mode when a type conforms
// partially.
const exitPartial = 2

func cliApp() *cli.App {
	return &cli.App{
		Name:            "bidicheck",
		Usage:           "find bidirectional mappings in Go packages",
		Version:         "0.1.0",
		HideHelpCommand: true,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "Report which types satisfy the bidirectional mapping contract",
				ArgsUsage: "[packages]",
				UsageText: `
bidicheck check [options] [packages]

Loads the packages (default "./...", or the patterns of the config file) and
evaluates every exported named type. A type conforms when each capability is
declared by the type or by a type it embeds.

bidicheck check ./...
bidicheck check --strict --format yaml ./internal/...
`,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "config file (default " + config.DefaultFileName + " if present)",
					},
					&cli.StringFlag{
						Name:  "dir",
						Usage: "directory to resolve package patterns in",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "output format: text or yaml",
					},
					&cli.BoolFlag{
						Name:  "strict",
						Usage: "exit with status 2 when any type conforms partially",
					},
					&cli.BoolFlag{
						Name:  "require-inverted",
						Usage: "also require InvertedItems",
					},
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "number of packages evaluated at once",
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "list unrelated types too",
					},
				},
				Action: checkAction,
			},
			{
				Name:  "capabilities",
				Usage: "Print the capabilities a bidirectional mapping must provide",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: config.FormatText,
						Usage: "output format: text or yaml",
					},
				},
				Action: capabilitiesAction,
			},
			{
				Name:  "init",
				Usage: "Write a default " + config.DefaultFileName,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: initAction,
			},
		},
	}
}

// loadConfig reads the config file and applies command line overrides.
func loadConfig(c *cli.Context) (*config.File, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("format") {
		cfg.Format = c.String("format")
	}
	if c.IsSet("strict") {
		cfg.Strict = c.Bool("strict")
	}
	if c.IsSet("require-inverted") {
		cfg.RequireInverted = c.Bool("require-inverted")
	}
	if c.IsSet("concurrency") {
		cfg.Concurrency = c.Int("concurrency")
	}
	if c.Args().Present() {
		cfg.Patterns = c.Args().Slice()
	}

	if res := config.Validate(cfg); !res.IsValid() {
		return nil, fmt.Errorf("invalid config: %w", res.Error())
	}

	return cfg, nil
}

func checkAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return cli.Exit(err, 1)
	}

	log, err := logger.New(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return cli.Exit(err, 1)
	}
	defer func() { _ = log.Sync() }()

	names := bidi.CapabilityNames()
	if cfg.RequireInverted {
		names = append(names, bidi.InvertedItemsCapability().Method)
	}

	analyzer := analyze.NewAnalyzer(
		analyze.WithNames(names...),
		analyze.WithConcurrency(cfg.Concurrency),
		analyze.WithDir(c.String("dir")),
	)

	log.Debugw("loading packages", "patterns", []string(cfg.Patterns), "concurrency", cfg.Concurrency)

	scan, err := analyzer.LoadPackages(c.Context, cfg.Patterns...)
	if err != nil {
		log.Errorw("scan failed", "error", err)
		return cli.Exit(err, 1)
	}

	r := report.Build(scan, report.Options{
		Threshold: cfg.PartialThreshold,
		Unrelated: c.Bool("all"),
	})
	log.Infow("scan complete",
		"packages", r.Summary.Packages,
		"types", r.Summary.Types,
		"conforming", r.Summary.Conforming,
		"partial", r.Summary.Partial)

	if err := report.Write(c.App.Writer, r, cfg.Format); err != nil {
		return cli.Exit(err, 1)
	}

	if r.Failed(cfg.Strict) {
		return cli.Exit(fmt.Sprintf("%d types conform partially", r.Summary.Partial), exitPartial)
	}

	return nil
}

type capabilityRow struct {
	Name   string `yaml:"name"`
	Method string `yaml:"method"`
	Kind   string `yaml:"kind"`
}

func capabilitiesAction(c *cli.Context) error {
	caps := append(bidi.Capabilities(), bidi.InvertedItemsCapability())

	rows := make([]capabilityRow, 0, len(caps))
	for _, cp := range caps {
		rows = append(rows, capabilityRow{Name: cp.Name, Method: cp.Method, Kind: cp.Kind.String()})
	}

	switch c.String("format") {
	case config.FormatYAML:
		enc := yaml.NewEncoder(c.App.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return cli.Exit(err, 1)
		}
		return enc.Close()

	case config.FormatText:
		tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "KIND\tMETHOD\tCAPABILITY")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Kind, r.Method, r.Name)
		}
		return tw.Flush()

	default:
		return cli.Exit(fmt.Sprintf("unknown format %q", c.String("format")), 1)
	}
}

func initAction(c *cli.Context) error {
	path := config.DefaultFileName
	if c.Args().Present() {
		path = c.Args().First()
	}

	if !c.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return cli.Exit(path+" already exists (use --force to overwrite)", 1)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return cli.Exit(err, 1)
		}
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		return cli.Exit(err, 1)
	}

	fmt.Fprintln(c.App.Writer, "wrote", path)
	return nil
}
