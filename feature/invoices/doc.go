// Package invoices implements the invoice extraction feature.
//
// Suppliers send purchase-order invoices as PDF attachments to a dedicated
// mailbox. This feature crawls the inbox over IMAP, extracts the PO fields
// (number, date, expiry, delivery date) from each PDF's text, and archives
// the recognized PDFs to object storage.
//
// The orders reconciliation core does not consume these records; the feature
// shares the deployment, not the domain.
//
// # Components
//
//   - Mailbox: IMAP client that collects the day's PDF attachments.
//   - Extractor: PDF text extraction plus regex field parsing.
//   - Service: Orchestrates fetch, extraction, and archival.
//   - Handler: Exposes the fetch and archive HTTP endpoints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /invoices/fetch              : Crawl the mailbox and return records.
//   - GET /invoices/archive            : List archived invoice PDFs.
//   - GET /invoices/archive/:filename  : Download an archived PDF.
package invoices
