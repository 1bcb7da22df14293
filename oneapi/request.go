package oneapi

import "strings"

// BaseURL is the root every request is built from.
const BaseURL = "https://the-one-api.dev/v2"

// Endpoints and sub-resources served by The One API.
const (
	EndpointMovie     = "movie"
	EndpointQuote     = "quote"
	EndpointBook      = "book"
	EndpointChapter   = "chapter"
	EndpointCharacter = "character"

	QueryQuote   = "quote"
	QueryChapter = "chapter"
)

// Request describes a single GET against the API.
// ID, Query and Filter are optional; blank values are treated as absent.
type Request struct {
	Endpoint string
	ID       string
	Query    string
	Filter   string // raw query string, sent verbatim
}

// ComposeURL joins base, endpoint, id, query and filter into a request URL.
// Segments always appear in that order and nothing is escaped.
func ComposeURL(base string, req Request) string {
	var sb strings.Builder
	sb.WriteString(base)
	sb.WriteByte('/')
	sb.WriteString(req.Endpoint)

	if !isBlank(req.ID) {
		sb.WriteByte('/')
		sb.WriteString(req.ID)
	}
	if !isBlank(req.Query) {
		sb.WriteByte('/')
		sb.WriteString(req.Query)
	}
	if !isBlank(req.Filter) {
		sb.WriteByte('?')
		sb.WriteString(req.Filter)
	}

	return sb.String()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
