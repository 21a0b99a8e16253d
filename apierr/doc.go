// Package apierr defines the error taxonomy shared by every ElevenLabs API call.
//
// Every failure surfaced by the dispatcher is an *Error carrying a Kind. The
// kind is derived from the HTTP status code of the response, or marks a
// response that could not be parsed, or a request that never produced a
// response at all (transport failure).
//
// # Status mapping
//
//   - 401: KindAuthentication
//   - 402: KindPaymentRequired
//   - 403: KindForbidden
//   - 404: KindNotFound
//   - 422: KindUnprocessableEntity (with field-level Details when present)
//   - 429: KindRateLimit
//   - 503: KindServiceUnavailable
//   - any other 4xx/5xx: KindAPI
//
// # Checking errors
//
// Each kind has a sentinel that matches through errors.Is:
//
//	doc, err := kb.GetDocument(ctx, id)
//	if errors.Is(err, apierr.ErrNotFound) {
//		// handle missing document
//	}
//
// Callers that want everything the SDK produced can use errors.As:
//
//	var apiErr *apierr.Error
//	if errors.As(err, &apiErr) {
//		log.Printf("status=%d kind=%s", apiErr.StatusCode, apiErr.Kind)
//	}
//
// Nothing in this module retries. Backoff on KindRateLimit or
// KindServiceUnavailable is left to the caller.
package apierr
