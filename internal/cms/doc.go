// Package cms provides the HTTP client for the website CMS API.
//
// # Overview
//
// Every CMS endpoint answers with the same JSON envelope:
//
//	{"code": 200, "msg": "success", "data": {...}}
//	{"code": 401, "message": "Unauthorized"}
//
// The Client hides that wrapper. Callers get either a *Result holding the
// envelope data or an error.
//
// # Request Handling
//
// All requests:
//   - Resolve against the configured API base (base path "/")
//   - Carry Accept: application/json, a User-Agent and an X-Request-Id
//   - Carry Authorization: Bearer <token> when the TokenSource has a token and
//     RequestOptions.SkipAuth is false
//   - Time out after 10 seconds unless Options.Timeout says otherwise
//
// GET params are folded into the path before the request is built and the
// caller's params map is emptied, so the query is encoded exactly once.
//
// # Error Handling
//
// Envelope codes map to *APIError values whose Error() is the server message:
//
//   - 401: logged as a warning (session expired)
//   - 500: logged as an error (system error)
//   - 601: logged as a warning
//   - anything else but 200: logged as an error (interface error)
//
// Transport failures (timeouts, refused connections, non-2xx HTTP statuses)
// are logged twice, once with the raw message and once with a short
// classification, and then returned unchanged so callers can still inspect
// the original error.
//
// The client never retries. Retry policy belongs to the caller.
//
// # Thread Safety
//
// A Client is safe for concurrent use. Overlapping calls are independent.
package cms
