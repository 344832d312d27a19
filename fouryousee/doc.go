// Package fouryousee provides a client for the 4YouSee Manager REST API.
//
// 4YouSee is a digital-signage platform. Its API exposes users, uploads,
// media, media categories, players, playlists, templates, news sources,
// news and reports. This package turns method calls into authenticated
// requests, walks paginated listings and decodes the JSON answers into
// Records.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := fouryousee.NewClient(
//		"your-secret-token",
//		logger,
//		fouryousee.WithRequestDelay(time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//
//	// Every player of the account
//	players, err := client.Players(ctx, fouryousee.All{})
//
//	// Server side filtering
//	medias, err := client.Medias(ctx, fouryousee.Filter{"name": "promo"})
//
//	// A single record
//	media, err := client.Medias(ctx, fouryousee.ID(42))
//
// # Queries
//
// Resource getters take a Query: All, Filter or ByID. What each resource
// accepts differs because the remote endpoints differ. Lookups by id on
// uploads and templates are answered from the full listing and return an
// empty Result when nothing matches; the other resources ask the server
// for the record and fail with an APIError when it does not exist.
// Passing a Filter to a resource that only understands ids returns a
// UsageError.
//
// # Pacing
//
// The API enforces an undocumented request rate. Every request waits for a
// fixed delay (one second unless WithRequestDelay says otherwise) and, when
// WithRateLimit is set, for a token from a shared limiter.
//
// # Error Handling
//
//   - APIError: the server answered with a non-success status; Body holds
//     the raw response text
//   - ValidationError: a payload failed local checks, nothing was sent
//   - NotFoundError: an existence probe before delete or edit failed
//   - UsageError: the query is not supported by the resource
//
//	var apiErr *fouryousee.APIError
//	if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
//		// Handle bad token
//	}
package fouryousee
