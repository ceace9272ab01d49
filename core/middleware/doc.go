// Package middleware groups the Fiber handlers mounted in front of the
// reconciliation and history routes.
//
// Subpackages:
//
//   - auth checks the X-API-Key header (or api_key query parameter) when a key
//     is configured.
//   - rayid tags each request with an identifier, echoed in the response and
//     picked up by logger.WithRayID.
package middleware
