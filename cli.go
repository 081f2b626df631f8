package main

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/andareed/siftly-grid/config"
	"github.com/andareed/siftly-grid/grid"
	"github.com/andareed/siftly-grid/logging"
)

type rootOptions struct {
	configPath string
	debugFile  string
	groupBy    []string
	details    bool
	rowHeader  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "sfgrid [file]",
		Short: "Browse and search orders in a terminal grid",
		Long: "sfgrid shows orders from a .csv, .json or .yaml file (or the built-in sample)\n" +
			"in a scrollable grid with find next / find previous.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "config file (default .sfgrid.toml in . or $HOME)")
	pf.StringVar(&opts.debugFile, "debug", "", "write debug logs to file")
	pf.StringSliceVar(&opts.groupBy, "group-by", nil, "group rows by these columns, outermost first")
	pf.BoolVar(&opts.details, "details", false, "show the items of each order in a nested grid")
	pf.BoolVar(&opts.rowHeader, "row-header", false, "show the row header column")

	cmd.AddCommand(newFindCmd(opts), newInitConfigCmd(), newVersionCmd())
	return cmd
}

// prepare loads the config, lets changed flags override it and starts
// logging. The caller runs cleanup when done.
func (o *rootOptions) prepare(fs *pflag.FlagSet) (*config.Config, func(), error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return nil, nil, err
	}
	o.applyFlags(fs, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	cleanup, err := logging.SetupLogging(cfg.Log.File)
	if err != nil {
		return nil, nil, err
	}
	return cfg, cleanup, nil
}

func (o *rootOptions) applyFlags(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("debug") {
		cfg.Log.File = o.debugFile
	}
	if fs.Changed("group-by") {
		cfg.Grid.GroupBy = o.groupBy
	}
	if fs.Changed("details") {
		cfg.Grid.Details = o.details
	}
	if fs.Changed("row-header") {
		cfg.Grid.ShowRowHeader = o.rowHeader
	}
}

func argPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func runTUI(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, cleanup, err := opts.prepare(cmd.Flags())
	if err != nil {
		return err
	}
	defer cleanup()

	path := argPath(args)
	list, err := loadOrders(path)
	if err != nil {
		return err
	}
	m, err := newModel(cfg, list, path)
	if err != nil {
		return err
	}

	logging.Infof("sfgrid %s: started", Version)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		logging.Errorf("tea program error: %v", err)
		return fmt.Errorf("running UI: %w", err)
	}
	return nil
}

type findOptions struct {
	text     string
	previous bool
	all      bool
	columns  []string
	match    string
}

func newFindCmd(root *rootOptions) *cobra.Command {
	opts := &findOptions{}
	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Print the cells find next (or previous) stops at",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, cleanup, err := root.prepare(cmd.Flags())
			if err != nil {
				return err
			}
			defer cleanup()

			fs := cmd.Flags()
			if fs.Changed("columns") {
				cfg.Search.Columns = opts.columns
			}
			if fs.Changed("match") {
				cfg.Search.Match = opts.match
			}

			list, err := loadOrders(argPath(args))
			if err != nil {
				return err
			}
			g, err := buildGrid(cfg, list)
			if err != nil {
				return err
			}
			return runFind(cmd.OutOrStdout(), g, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.text, "text", "t", "", "text to find")
	f.BoolVarP(&opts.previous, "prev", "p", false, "search backwards")
	f.BoolVarP(&opts.all, "all", "a", false, "keep going until the search wraps to the first match")
	f.StringSliceVar(&opts.columns, "columns", nil, "only search these columns")
	f.StringVar(&opts.match, "match", "", "match mode: contains, case-sensitive or fuzzy")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

var errNoMatch = errors.New("no match")

// runFind steps the grid's finder and prints one "row<TAB>column<TAB>value"
// line per stop. A match in a details view prints its host row and nested
// row joined by a dot.
func runFind(w io.Writer, g *grid.Grid, opts *findOptions) error {
	// headless: everything is laid out, so nothing ever scrolls
	g.Resize(1<<20, 1<<20)

	finder := g.Finder()
	step := finder.FindNext
	if opts.previous {
		step = finder.FindPrevious
	}

	c := g.Search()
	first := ""
	for {
		if !step(opts.text) {
			break
		}
		key := fmt.Sprint(c.Path())
		if key == first {
			break
		}
		if first == "" {
			first = key
		}
		col, value, _ := cellAt(matchAt(c))
		fmt.Fprintf(w, "%s\t%s\t%s\n", matchPosition(c), col.Name, value)
		if !opts.all {
			break
		}
	}

	if first == "" {
		return fmt.Errorf("%q: %w", opts.text, errNoMatch)
	}
	return nil
}

func newInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the default configuration as TOML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.FileName + ".toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteExample(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sfgrid %s\n", Version)
		},
	}
}
