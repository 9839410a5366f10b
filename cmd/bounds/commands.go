package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mickamy/ormlatest/internal/example/model"
	"github.com/mickamy/ormlatest/internal/example/repo"
	"github.com/mickamy/ormlatest/orm"
)

const dateLayout = "2006-01-02"

func migrateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the articles and people tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.open()
			if err != nil {
				return err
			}
			if err := repo.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓"), "tables ready")
			return nil
		},
	}
}

func seedCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the sample articles and people",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := opts.open()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := repo.Migrate(ctx, db); err != nil {
				return err
			}
			return db.Transaction(ctx, func(tx *orm.Tx) error {
				return seed(ctx, tx, cmd.OutOrStdout())
			})
		},
	}
}

func seed(ctx context.Context, db orm.Querier, out io.Writer) error {
	d := func(y int, m time.Month, day int) time.Time { return time.Date(y, m, day, 0, 0, 0, 0, time.UTC) }

	articles := repo.NewArticleRepository(db)
	for _, a := range []*model.Article{
		{Headline: "Article 1", PubDate: d(2005, 7, 26), ExpireDate: d(2005, 9, 1)},
		{Headline: "Article 2", PubDate: d(2005, 7, 27), ExpireDate: d(2005, 7, 28)},
		{Headline: "Article 3", PubDate: d(2005, 7, 28), ExpireDate: d(2005, 8, 27)},
		{Headline: "Article 4", PubDate: d(2005, 7, 28), ExpireDate: d(2005, 7, 30)},
	} {
		if err := articles.Create(ctx, a); err != nil {
			return fmt.Errorf("create %s: %w", a.Headline, err)
		}
		fmt.Fprintf(out, "%s article %d: %s\n", color.GreenString("✓"), a.ID, a.Headline)
	}

	people := repo.NewPersonRepository(db)
	for _, p := range []*model.Person{
		{Name: "Ralph", Birthday: d(1950, 1, 1)},
		{Name: "Stephanie", Birthday: d(1960, 2, 3)},
	} {
		if err := people.Create(ctx, p); err != nil {
			return fmt.Errorf("create %s: %w", p.Name, err)
		}
		fmt.Fprintf(out, "%s person %d: %s\n", color.GreenString("✓"), p.ID, p.Name)
	}
	return nil
}

func boundCmd(opts *options, name string) *cobra.Command {
	var kind, after, before string

	bound := repo.Earliest
	short := "Show the row with the smallest value of a field"
	if name == "latest" {
		bound = repo.Newest
		short = "Show the row with the largest value of a field"
	}

	cmd := &cobra.Command{
		Use:   name + " [field]",
		Short: short,
		Long: short + `.

Without a field, articles order by pub_date. People declare no default
field, so a field is required for them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := ""
			if len(args) == 1 {
				field = args[0]
			}

			db, err := opts.open()
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			switch kind {
			case "article":
				filter, err := parseFilter(after, before)
				if err != nil {
					return err
				}
				a, err := repo.NewArticleRepository(db).Find(ctx, bound, field, filter)
				if err != nil {
					return describe(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (published %s, expires %s)\n",
					color.CyanString("#%d", a.ID), color.New(color.Bold).Sprint(a.Headline),
					a.PubDate.Format(dateLayout), a.ExpireDate.Format(dateLayout))
			case "person":
				if after != "" || before != "" {
					return errors.New("--after and --before apply to articles only")
				}
				p, err := repo.NewPersonRepository(db).Find(ctx, bound, field)
				if err != nil {
					return describe(err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s (born %s)\n",
					color.CyanString("#%d", p.ID), color.New(color.Bold).Sprint(p.Name),
					p.Birthday.Format(dateLayout))
			default:
				return fmt.Errorf("unknown model %q (use article or person)", kind)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "model", "article", "model to query (article or person)")
	cmd.Flags().StringVar(&after, "after", "", "only articles published after this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&before, "before", "", "only articles published before this date (YYYY-MM-DD)")
	return cmd
}

func parseFilter(after, before string) (repo.ArticleFilter, error) {
	var f repo.ArticleFilter
	var err error
	if after != "" {
		if f.PublishedAfter, err = time.Parse(dateLayout, after); err != nil {
			return f, fmt.Errorf("--after: %w", err)
		}
	}
	if before != "" {
		if f.PublishedBefore, err = time.Parse(dateLayout, before); err != nil {
			return f, fmt.Errorf("--before: %w", err)
		}
	}
	return f, nil
}

// describe colors the bounds errors a user can act on.
func describe(err error) error {
	switch {
	case errors.Is(err, orm.ErrNotFound):
		return errors.New(color.YellowString("no matching rows: %v", err))
	case errors.Is(err, orm.ErrImproperlyConfigured), errors.Is(err, orm.ErrUnknownField):
		return errors.New(color.RedString("%v", err))
	default:
		return err
	}
}
