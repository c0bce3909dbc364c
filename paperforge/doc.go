// Package paperforge provides a client for the Paperforge document
// generation API.
//
// Paperforge renders server-side templates into PDF documents. This package
// implements a small, idiomatic Go client for submitting template data and
// retrieving the generated document along with its response metadata.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := paperforge.NewClient("your-api-key",
//		paperforge.WithTimeout(60*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := client.Generate(ctx, "invoice-2024", &paperforge.GenerateRequest{
//		Data:    map[string]any{"customer": "ACME"},
//		Options: &paperforge.GenerateOptions{Filename: "acme.pdf"},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	os.WriteFile(result.Filename, result.Document, 0o644)
//
// # Error Handling
//
// Every failure from Generate is a *Error carrying a Kind that classifies
// it. Callers branch on the kind to decide retry and messaging behavior:
//
//	var apiErr *paperforge.Error
//	if errors.As(err, &apiErr) {
//		switch apiErr.Kind {
//		case paperforge.KindRateLimit:
//			// apiErr.RetryAfter holds the server's advice, if any
//		case paperforge.KindTimeout:
//			// the configured timeout elapsed with no response
//		}
//	}
//
// Only KindRateLimit carries RetryAfter; only KindNetwork carries an
// underlying cause, exposed through errors.Unwrap.
//
// # Thread Safety
//
// A Client is safe for concurrent use by multiple goroutines. Each Generate
// call is fully independent: no state is shared across calls, nothing is
// cached, and no retries are performed. Callers own any retry policy.
package paperforge
