package invoices

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// InvoiceDetails is the metadata extracted from one purchase-order PDF.
type InvoiceDetails struct {
	Subject        string `json:"subject"`
	Filename       string `json:"filename"`
	PONumber       string `json:"poNumber"`
	Date           string `json:"date"`
	POExpiryDate   string `json:"poExpiryDate"`
	PODeliveryDate string `json:"poDeliveryDate"`
}

var (
	poNumberRe   = regexp.MustCompile(`(?i)P\.O\. Number\s*:?\s*([^\n\r]+)`)
	dateRe       = regexp.MustCompile(`(?i)Date\s*:?\s*([^\n\r]+)`)
	poExpiryRe   = regexp.MustCompile(`(?i)PO expiry date\s*:?\s*([^\n\r]+)`)
	poDeliveryRe = regexp.MustCompile(`(?i)PO delivery date\s*:?\s*([^\n\r]+)`)
)

// ParseInvoiceFields pulls the purchase-order fields out of extracted PDF
// text. Missing fields stay empty; a record without a PO number is not an
// invoice and is discarded by the caller.
func ParseInvoiceFields(text string) InvoiceDetails {
	field := func(re *regexp.Regexp) string {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return ""
		}
		return strings.TrimSpace(m[1])
	}

	return InvoiceDetails{
		PONumber:       field(poNumberRe),
		Date:           field(dateRe),
		POExpiryDate:   field(poExpiryRe),
		PODeliveryDate: field(poDeliveryRe),
	}
}

// extractText renders the PDF's plain text. Overridable in tests, which have
// no way to produce meaningful PDF fixtures.
var extractText = func(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("failed to extract pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("failed to read pdf text: %w", err)
	}
	return buf.String(), nil
}
