// Package oneapi provides a client for The One API (https://the-one-api.dev).
//
// The One API serves Lord of the Rings data: movies, quotes, books, chapters
// and characters. This package builds request URLs, attaches the bearer token
// and returns whatever JSON the server sends back, decoded into plain Go values.
//
// # Architecture
//
//   - ComposeURL: builds the request path from a Request descriptor
//   - Client: blocking and concurrent executors bound to one API key
//   - Safe / SafeAsync: turn any error or panic into a Result value
//   - Gather / Batch: join several concurrent fetches
//
// # Usage
//
//	logger := zerolog.New(os.Stdout)
//	client, err := oneapi.NewClient("your-api-key", logger,
//		oneapi.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	movies := client.FetchAllMovies(ctx, "budgetInMillions<100")
//	quote := client.FetchQuoteByID(ctx, "5cd96e05de30eff6ebcce7e9", "", "")
//
//	for _, res := range oneapi.Gather(ctx, movies, quote) {
//		if res.Failed() {
//			log.Println(res.Failure)
//			continue
//		}
//		fmt.Println(res.Data)
//	}
//
// # Error Handling
//
// Operations never return a Go error. Every failure (connection refused,
// timeout, malformed body, missing endpoint) is flattened into a Result whose
// Failure field carries the message. Encoded as JSON, such a Result is exactly
// {"error": "<message>"}.
package oneapi
