package invoices

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const sampleText = `ACME SUPPLIES PVT LTD
Purchase Order
P.O. Number : PO-2024-0042
Date: 01/03/2024
PO expiry date : 15/03/2024
PO delivery date: 10/03/2024
Total: 12,499.00`

func TestParseInvoiceFields(t *testing.T) {
	t.Run("Extracts All Fields", func(t *testing.T) {
		details := ParseInvoiceFields(sampleText)
		assert.Equal(t, "PO-2024-0042", details.PONumber)
		assert.Equal(t, "15/03/2024", details.POExpiryDate)
		assert.Equal(t, "10/03/2024", details.PODeliveryDate)
		assert.NotEmpty(t, details.Date)
	})

	t.Run("Missing PO Number", func(t *testing.T) {
		details := ParseInvoiceFields("Dear customer, see attached flyer.")
		assert.Empty(t, details.PONumber)
	})

	t.Run("Case Insensitive", func(t *testing.T) {
		details := ParseInvoiceFields("p.o. number: ABC-1\npo EXPIRY date: tomorrow")
		assert.Equal(t, "ABC-1", details.PONumber)
		assert.Equal(t, "tomorrow", details.POExpiryDate)
	})

	t.Run("Trims Whitespace", func(t *testing.T) {
		details := ParseInvoiceFields("P.O. Number :   PO-7   \r\nrest")
		assert.Equal(t, "PO-7", details.PONumber)
	})
}
