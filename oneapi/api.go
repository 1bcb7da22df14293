package oneapi

import "context"

// API lists the operations a bound client exposes.
type API interface {
	// Fetch is the blocking raw call; every field comes from the caller.
	Fetch(ctx context.Context, req Request) Result

	// FetchAsync is the concurrent raw call.
	FetchAsync(ctx context.Context, req Request) *Future

	// FetchAllMovies lists movies, including both trilogies.
	FetchAllMovies(ctx context.Context, filter string) *Future

	// FetchMovieByID requests one movie.
	FetchMovieByID(ctx context.Context, id, query, filter string) *Future

	// FetchMovieQuotes requests the quotes of one movie (LotR trilogy only).
	FetchMovieQuotes(ctx context.Context, id, filter string) *Future

	// FetchAllQuotes lists movie quotes.
	FetchAllQuotes(ctx context.Context, filter string) *Future

	// FetchQuoteByID requests one quote.
	FetchQuoteByID(ctx context.Context, id, query, filter string) *Future
}

var _ API = (*Client)(nil)

func (c *Client) Fetch(ctx context.Context, req Request) Result {
	return c.fetch(ctx, req)
}

func (c *Client) FetchAsync(ctx context.Context, req Request) *Future {
	return c.fetchAsync(ctx, req)
}

func (c *Client) FetchAllMovies(ctx context.Context, filter string) *Future {
	return c.fetchAsync(ctx, Request{Endpoint: EndpointMovie, Filter: filter})
}

func (c *Client) FetchMovieByID(ctx context.Context, id, query, filter string) *Future {
	return c.fetchAsync(ctx, Request{Endpoint: EndpointMovie, ID: id, Query: query, Filter: filter})
}

func (c *Client) FetchMovieQuotes(ctx context.Context, id, filter string) *Future {
	return c.fetchAsync(ctx, Request{Endpoint: EndpointMovie, ID: id, Query: QueryQuote, Filter: filter})
}

func (c *Client) FetchAllQuotes(ctx context.Context, filter string) *Future {
	return c.fetchAsync(ctx, Request{Endpoint: EndpointQuote, Filter: filter})
}

func (c *Client) FetchQuoteByID(ctx context.Context, id, query, filter string) *Future {
	return c.fetchAsync(ctx, Request{Endpoint: EndpointQuote, ID: id, Query: query, Filter: filter})
}
