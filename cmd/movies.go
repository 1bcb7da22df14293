package cmd

import (
	"github.com/spf13/cobra"
)

var (
	apiFilter   string
	apiQuery    string
	movieQuotes bool
)

// moviesCmd represents the movies command
var moviesCmd = &cobra.Command{
	Use:   "movies",
	Short: "List movies",
	Long: `List movies from The One API, including both trilogies.

Examples:
  onering movies
  onering movies --filter 'budgetInMillions<100'
  onering movies --filter 'name=/el/i'
  onering movies --where 'academyAwardWins > 10'`,
	PreRunE: initializeApp,
	RunE:    runMovies,
}

// movieCmd represents the movie command
var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show one movie or its quotes",
	Long: `Show one movie by id. With --quotes, list its quotes instead
(only available for the Lord of the Rings trilogy).

Examples:
  onering movie 5cd95395de30eff6ebccde5d
  onering movie 5cd95395de30eff6ebccde5d --quotes --filter limit=2`,
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runMovie,
}

func init() {
	rootCmd.AddCommand(moviesCmd)
	rootCmd.AddCommand(movieCmd)

	moviesCmd.Flags().StringVarP(&apiFilter, "filter", "f", "", "server-side filter, passed through verbatim")

	movieCmd.Flags().StringVarP(&apiFilter, "filter", "f", "", "server-side filter, passed through verbatim")
	movieCmd.Flags().StringVarP(&apiQuery, "query", "q", "", "sub-resource of the movie")
	movieCmd.Flags().BoolVar(&movieQuotes, "quotes", false, "list the quotes of the movie")
	movieCmd.MarkFlagsMutuallyExclusive("query", "quotes")
}

func runMovies(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return printResult(cmd, client.FetchAllMovies(ctx, apiFilter).Await(ctx))
}

func runMovie(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if movieQuotes {
		return printResult(cmd, client.FetchMovieQuotes(ctx, args[0], apiFilter).Await(ctx))
	}
	return printResult(cmd, client.FetchMovieByID(ctx, args[0], apiQuery, apiFilter).Await(ctx))
}
