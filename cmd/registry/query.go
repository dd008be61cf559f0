package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deppfellow/registry/internal/lib/utils"
	"github.com/deppfellow/registry/internal/service"
)

// lookupFunc runs one lookup and writes its JSON result to out.
type lookupFunc func(ctx context.Context, records *service.RecordsService, out io.Writer) error

func newQueryCmd() *cobra.Command {
	queryCmd := &cobra.Command{
		Use:   "query",
		Short: "Run a single lookup and print the result as JSON",
	}

	queryCmd.AddCommand(
		lookupCmd("records", "Directors joined to each business they are linked to", cobra.NoArgs,
			func(args []string) (lookupFunc, error) {
				return func(ctx context.Context, records *service.RecordsService, out io.Writer) error {
					data, err := records.Records(ctx)
					if err != nil {
						return err
					}
					return utils.WriteRawJSON(out, data)
				}, nil
			}),
		lookupCmd("directors", "All directors", cobra.NoArgs,
			func(args []string) (lookupFunc, error) {
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.Directors(ctx)
				}), nil
			}),
		lookupCmd("director ID", "A single director", cobra.ExactArgs(1),
			func(args []string) (lookupFunc, error) {
				id, err := parseID(args[0])
				if err != nil {
					return nil, err
				}
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.Director(ctx, id)
				}), nil
			}),
		lookupCmd("businesses", "All businesses", cobra.NoArgs,
			func(args []string) (lookupFunc, error) {
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.Businesses(ctx)
				}), nil
			}),
		lookupCmd("business ID", "A single business", cobra.ExactArgs(1),
			func(args []string) (lookupFunc, error) {
				id, err := parseID(args[0])
				if err != nil {
					return nil, err
				}
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.Business(ctx, id)
				}), nil
			}),
		lookupCmd("businesses-in-year YEAR", "Businesses registered in a calendar year", cobra.ExactArgs(1),
			func(args []string) (lookupFunc, error) {
				year, err := parseYear(args[0])
				if err != nil {
					return nil, err
				}
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.BusinessesRegisteredInYear(ctx, year)
				}), nil
			}),
		lookupCmd("recent-directors", "The 100 directors with the highest ids", cobra.NoArgs,
			func(args []string) (lookupFunc, error) {
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.RecentDirectors(ctx)
				}), nil
			}),
		lookupCmd("business-directors", "Every business with its director's full name", cobra.NoArgs,
			func(args []string) (lookupFunc, error) {
				return writeResult(func(ctx context.Context, records *service.RecordsService) (any, error) {
					return records.BusinessDirectors(ctx)
				}), nil
			}),
	)

	return queryCmd
}

// lookupCmd parses arguments before connecting, so bad input never opens a
// pool.
func lookupCmd(use, short string, args cobra.PositionalArgs, build func(args []string) (lookupFunc, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, err := build(args)
			if err != nil {
				return err
			}

			a, err := bootstrap(os.Stderr)
			if err != nil {
				return err
			}
			defer a.server.Close()

			return lookup(cmd.Context(), a.services.Records, cmd.OutOrStdout())
		},
	}
}

func writeResult(fetch func(ctx context.Context, records *service.RecordsService) (any, error)) lookupFunc {
	return func(ctx context.Context, records *service.RecordsService, out io.Writer) error {
		result, err := fetch(ctx, records)
		if err != nil {
			return err
		}
		return utils.WriteJSON(out, result)
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

func parseYear(arg string) (int, error) {
	year, err := strconv.Atoi(arg)
	if err != nil || year < 1 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q: must be between 1 and 9999", arg)
	}
	return year, nil
}
