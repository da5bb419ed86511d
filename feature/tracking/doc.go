// Package tracking implements the shipment tracking proxy feature.
//
// The storefront cannot call the courier's tracking API directly from the
// browser, so this feature proxies lookups server-side, attaching the Referer
// header the upstream expects and passing the courier's JSON payload through
// untouched.
//
// # Components
//
//   - Client: Resty-based courier API client with a request timeout.
//   - Handler: Exposes the tracking HTTP endpoint.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /tracking/:awb : Fetch the tracking payload for an AWB number.
package tracking
