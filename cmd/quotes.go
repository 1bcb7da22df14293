package cmd

import (
	"github.com/spf13/cobra"
)

// quotesCmd represents the quotes command
var quotesCmd = &cobra.Command{
	Use:   "quotes",
	Short: "List movie quotes",
	Long: `List movie quotes from The One API.

Examples:
  onering quotes --filter limit=10
  onering quotes --where 'dialog matches "(?i)precious"'`,
	PreRunE: initializeApp,
	RunE:    runQuotes,
}

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:     "quote <id>",
	Short:   "Show one quote",
	Args:    cobra.ExactArgs(1),
	PreRunE: initializeApp,
	RunE:    runQuote,
}

func init() {
	rootCmd.AddCommand(quotesCmd)
	rootCmd.AddCommand(quoteCmd)

	quotesCmd.Flags().StringVarP(&apiFilter, "filter", "f", "", "server-side filter, passed through verbatim")

	quoteCmd.Flags().StringVarP(&apiFilter, "filter", "f", "", "server-side filter, passed through verbatim")
	quoteCmd.Flags().StringVarP(&apiQuery, "query", "q", "", "sub-resource of the quote")
}

func runQuotes(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return printResult(cmd, client.FetchAllQuotes(ctx, apiFilter).Await(ctx))
}

func runQuote(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	return printResult(cmd, client.FetchQuoteByID(ctx, args[0], apiQuery, apiFilter).Await(ctx))
}
