package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/eriklarko/logic-solver/src/boolexpr"
	"github.com/eriklarko/logic-solver/src/config"
	"github.com/eriklarko/logic-solver/src/environment"
	"github.com/eriklarko/logic-solver/src/truthtable"
	"github.com/eriklarko/logic-solver/src/tui"
	"github.com/samber/lo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdin, os.Stdout).Run(os.Args); err != nil {
		slog.Error("logic-solver failed", "error", err)
		os.Exit(1)
	}
}

type solver struct {
	ui     *tui.TUI
	config *config.Config
}

func newApp(input io.Reader, output io.Writer) *cli.App {
	s := &solver{
		ui:     tui.New(input, output),
		config: config.Default(),
	}

	return &cli.App{
		Name:   "logic-solver",
		Usage:  "parse propositional formulas and solve them for one or all assignments",
		Reader: input,
		Writer: output,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "read settings from `FILE`",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log each failed row and other debug output to stderr",
			},
		},
		Before: s.setup,
		Action: s.interactive,
		Commands: []*cli.Command{
			{
				Name:      "eval",
				Usage:     "evaluate a formula for a single assignment",
				ArgsUsage: "FORMULA",
				Flags: []cli.Flag{
					&cli.StringSliceFlag{
						Name:    "assign",
						Aliases: []string{"a"},
						Usage:   "bind a variable, e.g. --assign A=true",
					},
					&cli.StringFlag{
						Name:  "assignment-file",
						Usage: "read `CSV` rows of variable,value. --assign takes precedence",
					},
					&cli.StringFlag{
						Name:  "save-assignment",
						Usage: "write the combined assignment to `CSV` for later --assignment-file use",
					},
				},
				Action: s.eval,
			},
			{
				Name:      "table",
				Usage:     "print the truth table of a formula",
				ArgsUsage: "FORMULA",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "vars",
						Usage: "comma separated variables to enumerate, defaults to the ones in the formula",
					},
					&cli.StringFlag{
						Name:  "policy",
						Usage: "fail-fast or collect, overrides failure-policy from the config",
					},
				},
				Action: s.table,
			},
			{
				Name:      "tree",
				Usage:     "print how a formula is parsed",
				ArgsUsage: "FORMULA",
				Action:    s.tree,
			},
			{
				Name:      "init",
				Usage:     "write a config file with the default settings",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: s.writeConfig,
			},
		},
	}
}

func (s *solver) setup(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level})))

	conf, err := config.LoadConfig(c.String("config"))
	if err != nil {
		// the default config file is optional, one given on the command line is not
		if errors.Is(err, fs.ErrNotExist) && !c.IsSet("config") {
			slog.Debug("no config file found, using defaults", "path", c.String("config"))
			return nil
		}
		return err
	}

	s.config = conf
	return nil
}

func (s *solver) eval(c *cli.Context) error {
	expr, err := parseArgs(c)
	if err != nil {
		return err
	}

	fromFile := boolexpr.Assignment{}
	if path := c.String("assignment-file"); path != "" {
		fromFile, err = config.ReadAssignment(path)
		if err != nil {
			return err
		}
	}
	fromFlags, err := config.ParseAssignment(c.StringSlice("assign"))
	if err != nil {
		return err
	}

	assignment := lo.Assign(fromFile, fromFlags)
	if path := c.String("save-assignment"); path != "" {
		if err := config.WriteAssignment(path, assignment); err != nil {
			return err
		}
		slog.Debug("saved assignment", "path", path, "variables", len(assignment))
	}

	return s.evaluate(expr, assignment)
}

func (s *solver) table(c *cli.Context) error {
	expr, err := parseArgs(c)
	if err != nil {
		return err
	}

	names := boolexpr.Variables(expr)
	if c.IsSet("vars") {
		names = config.SplitVariables(c.String("vars"))
	}

	policy, err := s.config.Policy()
	if err != nil {
		return err
	}
	if c.IsSet("policy") {
		policy, err = truthtable.ParseFailurePolicy(c.String("policy"))
		if err != nil {
			return err
		}
	}

	return s.printTable(expr, names, policy)
}

func (s *solver) tree(c *cli.Context) error {
	expr, err := parseArgs(c)
	if err != nil {
		return err
	}

	s.ui.PrintTree(expr)
	return nil
}

func (s *solver) writeConfig(c *cli.Context) error {
	conf := config.Default()
	if c.NArg() > 0 {
		conf.Path = c.Args().First()
	}

	if _, err := os.Stat(conf.Path); err == nil && !c.Bool("force") {
		return fmt.Errorf("%s already exists, use --force to overwrite it", conf.Path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", conf.Path, err)
	}

	if err := conf.Write(); err != nil {
		return err
	}

	s.ui.Printf("wrote default config to %s\n", conf.Path)
	return nil
}

// interactive reads pairs of lines, a variable list and a formula, until the
// input ends. Without variables the formula is evaluated as is, otherwise its
// truth table is printed.
func (s *solver) interactive(c *cli.Context) error {
	for {
		line, err := s.ui.ReadLine("Variables (comma separated, may be empty): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read variables: %w", err)
		}
		names := config.SplitVariables(line)

		formula, err := s.ui.ReadLine("Formula: ")
		if err != nil {
			return fmt.Errorf("failed to read formula: %w", err)
		}

		err = s.solve(formula, names)
		if !environment.IsInteractive() {
			if err != nil {
				return err
			}
			continue
		}

		if err != nil {
			s.ui.Printf("error: %v\n", err)
		}
		again, err := s.ui.Ask("Solve another formula? [y/N] ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil || !again {
			return err
		}
	}
}

func (s *solver) solve(formula string, names []string) error {
	expr, err := boolexpr.Parse(formula)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		return s.evaluate(expr, boolexpr.Assignment{})
	}

	policy, err := s.config.Policy()
	if err != nil {
		return err
	}
	return s.printTable(expr, names, policy)
}

func (s *solver) evaluate(expr boolexpr.Expression, assignment boolexpr.Assignment) error {
	if s.config.ShowTree {
		s.ui.PrintTree(expr)
	}

	value, err := boolexpr.Evaluate(expr, assignment)
	if err != nil {
		return fmt.Errorf("failed to evaluate %s: %w", boolexpr.Render(expr), err)
	}

	s.ui.Printf("%t\n", value)
	return nil
}

func (s *solver) printTable(expr boolexpr.Expression, names []string, policy truthtable.FailurePolicy) error {
	if len(names) > s.config.MaxVariables {
		return fmt.Errorf("refusing to enumerate %d variables, max-variables is %d", len(names), s.config.MaxVariables)
	}

	if s.config.ShowTree {
		s.ui.PrintTree(expr)
	}

	table, err := truthtable.Build(expr, names, policy)
	if table == nil {
		return err
	}
	if err != nil {
		// collected failures are listed in the table itself
		slog.Debug("truth table has failed rows", "rows", table.Failed(), "error", err)
	}

	s.ui.PrintTable(table)
	return nil
}

func parseArgs(c *cli.Context) (boolexpr.Expression, error) {
	if c.NArg() == 0 {
		return nil, fmt.Errorf("missing formula, usage: %s %s", c.Command.HelpName, c.Command.ArgsUsage)
	}

	return boolexpr.Parse(strings.Join(c.Args().Slice(), " "))
}
