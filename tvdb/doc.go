// Package tvdb provides a client for TheTVDB v4 API.
//
// TheTVDB is a community-driven television metadata service. This package
// implements a clean, idiomatic Go client for searching shows and fetching
// show and episode metadata.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: The main API client with token authentication, bounded
//     timeout retry on login and cursor pagination
//   - Models: Domain records representing TVDB entities (shows, episodes,
//     characters, artwork, seasons, ...)
//   - Parsers: Conversions from the API's raw scalar values, including its
//     all-zero date sentinels and string-encoded translation maps
//   - Errors: Structured error types for classification
//
// # Usage
//
// Create a new client with your API key and subscriber PIN:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := tvdb.NewClient("your-api-key", "your-pin", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	results, err := client.SearchShows(ctx, "Better Off Ted")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Authentication happens lazily on the first call; the token is then reused
// for the lifetime of the client. The service never expires tokens in
// practice and this client does not refresh them.
//
// # Error Handling
//
// Failures are classified into a small taxonomy:
//
//   - APIError: any non-2xx response without a more specific meaning,
//     including responses whose bodies fail to parse as JSON
//   - AuthenticationError: login failures, missing tokens and exhausted
//     timeout retries
//   - NotFoundError: the service reported a missing resource, or a success
//     response carried no data
//   - DecodeError: a payload could not be coerced to its declared shape
//
// Use IsNotFound and IsAuthentication, or errors.As, to classify:
//
//	show, err := client.ShowInfo(ctx, 84021)
//	if tvdb.IsNotFound(err) {
//		// handle missing show
//	}
package tvdb
