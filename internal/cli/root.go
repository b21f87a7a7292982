package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dmitrijs2005/keeperdemo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const usageHint = "Run 'keeperdemo --help' for usage information."

// Execute runs the command line in args and returns the process exit code.
func Execute(ctx context.Context, args []string, in io.Reader, out, errw io.Writer) int {
	return newApp(in, out, errw).execute(ctx, args)
}

func (a *App) execute(ctx context.Context, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(a.in)
	cmd.SetOut(a.out)
	cmd.SetErr(a.errw)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	if isCancelled(err) {
		fmt.Fprintln(a.out, "\n\nOperation cancelled by user.")
		return 0
	}

	var ue *UsageError
	if errors.As(err, &ue) {
		fmt.Fprintf(a.errw, "Error: %s\n", ue.Msg)
		if ue.Hint != "" {
			fmt.Fprintln(a.errw, ue.Hint)
		}
		return 1
	}
	fmt.Fprintf(a.errw, "Unexpected error: %v\n", err)
	return 1
}

// normalizeFlags maps flag aliases onto their canonical names.
func normalizeFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	switch name {
	case "database":
		name = "db"
	}
	return pflag.NormalizedName(name)
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf(fmt.Sprintf("unexpected argument %q", args[0]), usageHint)
	}
	return nil
}

func newRootCmd(a *App) *cobra.Command {
	var (
		o       options
		cfgFile string
	)

	cmd := &cobra.Command{
		Use:   "keeperdemo",
		Short: "Demo CLI over an encrypted credential vault",
		Long: `keeperdemo opens a credential vault, runs one action against it and
prints the result. Passwords are only ever shown as masks.`,
		Example: `  keeperdemo --db ~/vault.db --entry "My Website" --get-credentials
  keeperdemo --db ~/vault.db --entry "My Website" --get-credentials --gui
  keeperdemo --db ~/vault.db --entry "My Website" --autotype
  keeperdemo --db ~/vault.db --search "github"
  keeperdemo --interactive
  keeperdemo --interactive --gui`,
		Args:          noArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := config.NewViper()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return usageErrorf(err.Error(), usageHint)
			}
			a.configure(cfg)
			a.log.Debug(cmd.Context(), "configuration loaded", "db", cfg.DatabasePath, "gui", cfg.UseGUI)
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().NFlag() == 0 {
				return a.quickStart(cmd.Context())
			}
			req, err := resolve(o, a.cfg)
			if err != nil {
				return err
			}
			return a.run(cmd.Context(), req)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (JSON, YAML or TOML)")
	pf.String("db", "", "path to the vault database file (alias --database)")
	pf.Bool("gui", false, "use GUI for password input (default: console)")
	pf.BoolP("verbose", "v", false, "enable verbose logging")
	pf.Duration("autotype-delay", 5*time.Second, "countdown before autotype starts typing")
	pf.Int("search-limit", 10, "maximum number of search results")

	f := cmd.Flags()
	f.StringVar(&o.entry, "entry", "", "entry title to work with")
	f.StringVar(&o.search, "search", "", "search term for finding entries")
	f.BoolVar(&o.getCredentials, "get-credentials", false, "get username and password for the entry")
	f.BoolVar(&o.getFullEntry, "get-full-entry", false, "get full details for the entry")
	f.BoolVar(&o.autotype, "autotype", false, "execute the autotype sequence of the entry")
	f.BoolVar(&o.interactive, "interactive", false, "run in interactive mode")
	f.BoolVar(&o.compare, "compare", false, "compare console and GUI password input")

	cmd.SetGlobalNormalizationFunc(normalizeFlags)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErrorf(err.Error(), usageHint)
	})

	cmd.AddCommand(newInitCmd(a), newAddCmd(a))
	return cmd
}

// run dispatches a resolved request to its handler.
func (a *App) run(ctx context.Context, req request) error {
	switch req.action {
	case actionInteractive:
		return a.runInteractive(ctx, req.method)
	case actionCompare:
		return a.compareInputMethods(ctx, req.db)
	case actionGetCredentials:
		return a.getCredentials(ctx, req.db, req.target, req.method)
	case actionGetFullEntry:
		return a.getFullEntry(ctx, req.db, req.target, req.method)
	case actionAutotype:
		return a.runAutotype(ctx, req.db, req.target, req.method)
	case actionSearch:
		return a.searchEntries(ctx, req.db, req.target, req.method)
	}
	return fmt.Errorf("unknown action %d", req.action)
}
