package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/onering/filter"
	"github.com/s0up4200/onering/format"
	"github.com/s0up4200/onering/oneapi"
)

// whereFilter compiles the --where expression, falling back to output.where.
// It returns nil when neither is set.
func whereFilter() (*filter.ExprFilter, error) {
	expression := whereExpr
	if strings.TrimSpace(expression) == "" {
		expression = cfg.Output.Where
	}
	if strings.TrimSpace(expression) == "" {
		return nil, nil
	}

	f, err := filter.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid --where expression: %w", err)
	}
	return f, nil
}

// narrow applies the local expression to a successful result.
func narrow(res oneapi.Result, f *filter.ExprFilter) oneapi.Result {
	if f == nil || res.Failed() {
		return res
	}
	return oneapi.Success(filter.Apply(res.Data, f))
}

// printResult renders a single result and turns a failure into the command error.
func printResult(cmd *cobra.Command, res oneapi.Result) error {
	f, err := whereFilter()
	if err != nil {
		return err
	}

	res = narrow(res, f)
	fmt.Fprint(cmd.OutOrStdout(), format.New(cfg.Output.Format).FormatResult(res))

	if res.Failed() {
		return fmt.Errorf("request failed: %w", res.Err())
	}
	return nil
}

// printTasks renders joined task results and reports how many failed.
func printTasks(cmd *cobra.Command, results []oneapi.TaskResult) error {
	f, err := whereFilter()
	if err != nil {
		return err
	}

	var failed int
	for i := range results {
		results[i].Result = narrow(results[i].Result, f)
		if results[i].Result.Failed() {
			failed++
			logger.Warn().
				Str("task", results[i].Name).
				Str("id", results[i].ID).
				Str("error", results[i].Result.Failure.Message).
				Msg("Request failed")
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), format.New(cfg.Output.Format).FormatTasks(results))

	if failed > 0 {
		return fmt.Errorf("%d of %d requests failed", failed, len(results))
	}
	return nil
}
