package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := execute(context.Background(), &options{}, os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs one command line and releases the connection and logger
// whether or not the command succeeded.
func execute(ctx context.Context, opts *options, out io.Writer, args []string) error {
	defer opts.close()

	cmd := newRootCmd(opts)
	cmd.SetOut(out)
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

func newRootCmd(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "bounds",
		Short:   "Query the earliest and latest rows of the example schema",
		Version: version,
		Long: `bounds seeds the articles/people example tables and runs First and
Latest lookups against SQLite, MySQL or PostgreSQL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.dialect, "dialect", "sqlite", "database dialect (sqlite, mysql or postgres)")
	pf.StringVar(&opts.dsn, "dsn", "", "data source name (defaults per dialect)")
	pf.BoolVar(&opts.debug, "debug", false, "log every SQL statement")

	rootCmd.AddCommand(migrateCmd(opts))
	rootCmd.AddCommand(seedCmd(opts))
	rootCmd.AddCommand(boundCmd(opts, "first"))
	rootCmd.AddCommand(boundCmd(opts, "latest"))
	return rootCmd
}
