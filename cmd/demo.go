package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/oneapi"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a set of example requests concurrently",
	Long: `Fire eight example requests at once and print every result tagged with
the task that produced it:

- all movies
- movies with budgetInMillions<100
- movies with runtimeInMinutes>=160
- movies with name=/el/i
- The Return of the King by id
- two quotes from The Return of the King
- ten quotes
- one quote by id`,
	PreRunE: initializeApp,
	RunE:    runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

const (
	demoMovieID = "5cd95395de30eff6ebccde5d"
	demoQuoteID = "5cd96e05de30eff6ebcce7e9"
)

// demoBatch starts the example requests and returns them as one batch
func demoBatch(ctx context.Context, api oneapi.API) *oneapi.Batch {
	batch := oneapi.NewBatch()
	batch.Add("all movies", api.FetchAllMovies(ctx, ""))
	batch.Add("movies under 100M budget", api.FetchAllMovies(ctx, "budgetInMillions<100"))
	batch.Add("movies of 160 minutes or more", api.FetchAllMovies(ctx, "runtimeInMinutes>=160"))
	batch.Add("movies matching /el/i", api.FetchAllMovies(ctx, "name=/el/i"))
	batch.Add("movie by id", api.FetchMovieByID(ctx, demoMovieID, "", ""))
	batch.Add("movie quotes", api.FetchMovieQuotes(ctx, demoMovieID, "limit=2"))
	batch.Add("quotes", api.FetchAllQuotes(ctx, "limit=10"))
	batch.Add("quote by id", api.FetchQuoteByID(ctx, demoQuoteID, "", ""))

	return batch
}

func runDemo(cmd *cobra.Command, args []string) error {
	batch := demoBatch(cmd.Context(), client)

	logger.Info().Int("requests", batch.Len()).Msg("Waiting for requests")

	return printTasks(cmd, batch.Wait(cmd.Context()))
}
