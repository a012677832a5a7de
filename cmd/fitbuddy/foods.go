package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"text/tabwriter"
	"time"

	"fitbuddy/internal/client"
	"fitbuddy/internal/model"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newFoodsCmd(loggerFor func(*cobra.Command) zerolog.Logger) *cobra.Command {
	var (
		apiURL   string
		category string
		search   string
		watch    bool
		asJSON   bool
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "foods",
		Short: "List foods from the catalogue API",
		Long: "List foods from the catalogue API, optionally filtered by category (exact, case-insensitive) " +
			"and name search (substring, case-insensitive). With --watch, each line read from stdin is a new search; " +
			"--search, if given, is sent first.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := &client.FoodClient{
				BaseURL:    apiURL,
				HTTPClient: &http.Client{Timeout: timeout},
				Logger:     loggerFor(cmd).With().Str("component", "food-client").Logger(),
			}
			out := cmd.OutOrStdout()

			if watch {
				var initial []string
				if cmd.Flags().Changed("search") {
					initial = append(initial, search)
				}
				return watchFoods(cmd.Context(), cmd.InOrStdin(), out, c, category, initial, asJSON)
			}

			resp, err := c.Query(cmd.Context(), model.FoodQuery{Category: category, Search: search})
			if err != nil {
				return err
			}
			return printFoods(out, resp, asJSON)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api-url", envOr("FITBUDDY_API_URL", defaultAPIURL), "Base URL of the fitbuddy API")
	cmd.Flags().StringVar(&category, "category", "", "Only foods in this category")
	cmd.Flags().StringVar(&search, "search", "", "Only foods whose name contains this text")
	cmd.Flags().BoolVar(&watch, "watch", false, "Read search terms from stdin, one per line")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw response as JSON")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "HTTP timeout per request")

	return cmd
}

// watchFoods issues the initial searches and then one query per input line.
// Queries overlap; only the response to the most recent search issued so far
// is printed.
func watchFoods(ctx context.Context, in io.Reader, out io.Writer, c *client.FoodClient, category string, initial []string, asJSON bool) error {
	var (
		latest client.LatestQuery[*model.FoodListResponse]
		wg     sync.WaitGroup
		outMu  sync.Mutex
	)

	issue := func(search string) {
		q := model.FoodQuery{Category: category, Search: strings.TrimSpace(search)}

		reqCtx, finish := latest.Start(ctx)

		wg.Add(1)
		go func() {
			defer wg.Done()

			resp, err := finish(c.Query(reqCtx, q))
			if errors.Is(err, client.ErrStale) {
				return
			}

			outMu.Lock()
			defer outMu.Unlock()

			fmt.Fprintf(out, "search %q:\n", q.Search)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				return
			}
			_ = printFoods(out, resp, asJSON)
		}()
	}

	for _, s := range initial {
		issue(s)
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		issue(scanner.Text())
	}

	wg.Wait()

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read search terms: %w", err)
	}
	return nil
}

func printFoods(w io.Writer, resp *model.FoodListResponse, asJSON bool) error {
	if asJSON {
		b, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal foods json: %w", err)
		}
		fmt.Fprintln(w, string(b))
		return nil
	}

	if resp.Total == 0 {
		fmt.Fprintln(w, "No foods found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tKCAL\tPROTEIN\tCARBS\tFAT\tCATEGORY")
	for _, f := range resp.Foods {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%g\t%g\t%g\t%s\n", f.ID, f.Name, f.Calories, f.Protein, f.Carbs, f.Fat, f.Category)
	}
	tw.Flush()
	fmt.Fprintf(w, "%d foods\n", resp.Total)
	return nil
}
