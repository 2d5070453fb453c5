// Package boundary is the single catch point for failures leaving a call
// graph. The handler classifies the failure, resolves a localized user
// message from the catalog, logs the full cause chain exactly once, and
// returns a response safe to show end users.
//
// Nothing upstream of the handler may log-and-rethrow the same failure;
// that produces duplicate, misleading log entries. The handler itself never
// fails: when message resolution is impossible it falls back to a hardcoded
// generic message and still logs the original failure.
//
// Middleware adapts the handler to gin for HTTP services.
package boundary
