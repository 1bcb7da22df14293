package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/oneapi"
)

var (
	fetchReq   oneapi.Request
	fetchAsync bool
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch any endpoint with a raw request",
	Long: `Compose a request from endpoint, id, query and filter and print the decoded body.

The URL is built as <base>/<endpoint>[/<id>][/<query>][?<filter>]; blank
parts are left out and the filter is passed through verbatim.

Examples:
  onering fetch --endpoint movie
  onering fetch --endpoint movie --filter 'budgetInMillions<100'
  onering fetch --endpoint quote --id 5cd96e05de30eff6ebcce7e9 --async`,
	PreRunE: initializeApp,
	RunE:    runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVarP(&fetchReq.Endpoint, "endpoint", "e", "", "resource collection, e.g. movie or quote")
	fetchCmd.Flags().StringVar(&fetchReq.ID, "id", "", "resource identifier")
	fetchCmd.Flags().StringVarP(&fetchReq.Query, "query", "q", "", "sub-resource, e.g. quote")
	fetchCmd.Flags().StringVarP(&fetchReq.Filter, "filter", "f", "", "raw query string, e.g. limit=10")
	fetchCmd.Flags().BoolVar(&fetchAsync, "async", false, "use the concurrent request path")
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var res oneapi.Result
	if fetchAsync {
		res = client.FetchAsync(ctx, fetchReq).Await(ctx)
	} else {
		res = client.Fetch(ctx, fetchReq)
	}

	return printResult(cmd, res)
}
