// Package format renders One API results for the terminal.
package format

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/s0up4200/onering/oneapi"
)

// Formatter renders a Result as text
type Formatter interface {
	FormatResult(res oneapi.Result) string
	FormatTasks(results []oneapi.TaskResult) string
}

// New returns the formatter for the given output format ("console" or "json").
func New(format string) Formatter {
	if format == "json" {
		return &JSONFormatter{}
	}
	return NewConsoleFormatter()
}

// JSONFormatter prints results as indented JSON; failures print as {"error": ...}
type JSONFormatter struct{}

// FormatResult formats a single result
func (f *JSONFormatter) FormatResult(res oneapi.Result) string {
	out, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(out) + "\n"
}

// FormatTasks formats joined task results as one JSON array
func (f *JSONFormatter) FormatTasks(results []oneapi.TaskResult) string {
	type taskJSON struct {
		ID     string        `json:"id"`
		Name   string        `json:"name"`
		Result oneapi.Result `json:"result"`
	}

	tasks := make([]taskJSON, len(results))
	for i, r := range results {
		tasks[i] = taskJSON{ID: r.ID, Name: r.Name, Result: r.Result}
	}

	out, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Sprintf(`{"error": %q}`, err.Error())
	}
	return string(out) + "\n"
}

// ConsoleFormatter provides console output formatting for docs
type ConsoleFormatter struct{}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{}
}

// FormatResult formats a page of docs as a tree. Failures and payloads
// that are not pages fall back to JSON.
func (f *ConsoleFormatter) FormatResult(res oneapi.Result) string {
	if res.Failed() {
		return (&JSONFormatter{}).FormatResult(res)
	}

	page, ok := res.Data.(map[string]any)
	if !ok {
		return (&JSONFormatter{}).FormatResult(res)
	}
	docs, ok := page["docs"].([]any)
	if !ok {
		return (&JSONFormatter{}).FormatResult(res)
	}

	if len(docs) == 0 {
		return "No documents found\n"
	}

	var sb strings.Builder

	// Header
	sb.WriteString("\nDoc")
	if len(docs) != 1 {
		sb.WriteString("s")
	}
	fmt.Fprintf(&sb, " (%d", len(docs))
	if total, ok := page["total"]; ok {
		fmt.Fprintf(&sb, " of %s", scalar(total))
	}
	sb.WriteString("):\n\n")

	for i, d := range docs {
		isLast := i == len(docs)-1
		doc, _ := d.(map[string]any)
		f.formatDoc(&sb, doc, isLast)

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	if p, ok := page["page"]; ok {
		fmt.Fprintf(&sb, "\nPage %s/%s (limit %s, offset %s)\n",
			scalar(p), scalar(page["pages"]), scalar(page["limit"]), scalar(page["offset"]))
	}

	sb.WriteString("\n")
	return sb.String()
}

// FormatTasks formats every task result under its name
func (f *ConsoleFormatter) FormatTasks(results []oneapi.TaskResult) string {
	var sb strings.Builder
	for i, r := range results {
		status := "ok"
		if r.Result.Failed() {
			status = "failed"
		}
		fmt.Fprintf(&sb, "[%d/%d] %s (%s) %s\n", i+1, len(results), r.Name, status, r.ID)
		sb.WriteString(strings.Repeat("━", 50))
		sb.WriteString("\n")
		sb.WriteString(f.FormatResult(r.Result))
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatDoc formats a single doc entry
func (f *ConsoleFormatter) formatDoc(sb *strings.Builder, doc map[string]any, isLast bool) {
	prefix := "├"
	if isLast {
		prefix = "╰"
	}
	fmt.Fprintf(sb, "%s── %s\n", prefix, title(doc))

	indent := "│   "
	if isLast {
		indent = "    "
	}

	for _, line := range details(doc) {
		fmt.Fprintf(sb, "%s%s\n", indent, line)
	}
}

// title picks the most readable label a doc has
func title(doc map[string]any) string {
	id, _ := doc["_id"].(string)
	switch {
	case doc["name"] != nil:
		return fmt.Sprintf("%s [%s]", scalar(doc["name"]), id)
	case doc["dialog"] != nil:
		return fmt.Sprintf("%q [%s]", scalar(doc["dialog"]), id)
	case id != "":
		return id
	default:
		return "(untitled)"
	}
}

func details(doc map[string]any) []string {
	// Movie fields
	if _, ok := doc["runtimeInMinutes"]; ok {
		return []string{
			fmt.Sprintf("Runtime: %s min | Budget: $%sM | Box office: $%sM",
				scalar(doc["runtimeInMinutes"]), scalar(doc["budgetInMillions"]), scalar(doc["boxOfficeRevenueInMillions"])),
			fmt.Sprintf("Academy Awards: %s wins / %s nominations | Rotten Tomatoes: %s",
				scalar(doc["academyAwardWins"]), scalar(doc["academyAwardNominations"]), scalar(doc["rottenTomatoesScore"])),
		}
	}

	// Quote fields
	if _, ok := doc["dialog"]; ok {
		return []string{fmt.Sprintf("Movie: %s | Character: %s", scalar(doc["movie"]), scalar(doc["character"]))}
	}

	// Anything else: remaining fields, sorted
	keys := make([]string, 0, len(doc))
	for k := range doc {
		if k != "_id" && k != "name" {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("%s: %s", k, scalar(doc[k])))
	}
	return lines
}

// scalar renders decoded JSON values; whole floats print without decimals.
func scalar(v any) string {
	switch val := v.(type) {
	case nil:
		return "-"
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	default:
		out, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprint(val)
		}
		return string(out)
	}
}
