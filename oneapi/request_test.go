package oneapi

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeURL(t *testing.T) {
	tests := []struct {
		name     string
		req      Request
		expected string
	}{
		{
			name:     "endpoint only",
			req:      Request{Endpoint: "movie"},
			expected: BaseURL + "/movie",
		},
		{
			name:     "filter without id or query",
			req:      Request{Endpoint: "quote", Filter: "limit=3"},
			expected: BaseURL + "/quote?limit=3",
		},
		{
			name:     "id",
			req:      Request{Endpoint: "movie", ID: "5cd95395de30eff6ebccde5d"},
			expected: BaseURL + "/movie/5cd95395de30eff6ebccde5d",
		},
		{
			name:     "id query and filter",
			req:      Request{Endpoint: "movie", ID: "5cd95395de30eff6ebccde5d", Query: "quote", Filter: "limit=2"},
			expected: BaseURL + "/movie/5cd95395de30eff6ebccde5d/quote?limit=2",
		},
		{
			name:     "query without id",
			req:      Request{Endpoint: "movie", Query: "quote"},
			expected: BaseURL + "/movie/quote",
		},
		{
			name:     "blank fields are absent",
			req:      Request{Endpoint: "movie", ID: "   ", Query: "\t", Filter: " \n"},
			expected: BaseURL + "/movie",
		},
		{
			name:     "filter is not escaped",
			req:      Request{Endpoint: "movie", Filter: "name=/el/i"},
			expected: BaseURL + "/movie?name=/el/i",
		},
		{
			name:     "comparison filter kept verbatim",
			req:      Request{Endpoint: "movie", Filter: "budgetInMillions<100"},
			expected: BaseURL + "/movie?budgetInMillions<100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeURL(BaseURL, tt.req)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, got, ComposeURL(BaseURL, tt.req), "composition must be deterministic")
		})
	}
}

func TestComposeURL_SegmentOrder(t *testing.T) {
	url := ComposeURL("http://x", Request{Endpoint: "e", ID: "ID", Query: "QUERY", Filter: "FILTER=1"})

	idAt := strings.Index(url, "/ID")
	queryAt := strings.Index(url, "/QUERY")
	filterAt := strings.Index(url, "?FILTER=1")

	assert.True(t, idAt > 0 && idAt < queryAt && queryAt < filterAt, "unexpected order in %s", url)
	assert.True(t, strings.HasSuffix(url, "?FILTER=1"))
}
