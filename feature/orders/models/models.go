package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RawRow is one flat record from an order export. The JSON field names follow
// the export's column headers verbatim; the upstream spreadsheet-to-JSON
// conversion does not rename them.
type RawRow struct {
	ReferenceCode        string          `json:"Reference Code"`
	EEInvoiceNo          string          `json:"EE Invoice No"`
	AWBNo                string          `json:"AWB No"`
	OrderStatus          string          `json:"Order Status"`
	ShippingStatus       string          `json:"Shipping Status"`
	OrderDate            string          `json:"Order Date"`
	Courier              string          `json:"Courier"`
	ShippingCustomerName string          `json:"Shipping Customer Name"`
	ShippingAddress      string          `json:"Shipping Address Line 1"`
	ShippingCity         string          `json:"Shipping City"`
	ShippingState        string          `json:"Shipping State"`
	ShippingZipCode      string          `json:"Shipping Zip Code"`
	BuyerGSTNum          string          `json:"Buyer GST Num"`
	SuborderNo           string          `json:"Suborder No"`
	SKU                  string          `json:"SKU"`
	ProductName          string          `json:"Product Name"`
	ItemQuantity         int             `json:"Item Quantity"`
	SellingPrice         decimal.Decimal `json:"Selling Price"`
	Tax                  decimal.Decimal `json:"Tax"`
	OrderInvoiceAmount   decimal.Decimal `json:"Order Invoice Amount"`
}

// orderDateLayouts are the accepted formats for the Order Date column, most
// specific first. Exports from the marketplace use the first one.
var orderDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ParseOrderDate parses the Order Date column value.
func ParseOrderDate(value string) (time.Time, error) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized order date %q", value)
}

// OrderGroup is the transient grouping of export rows that share a reference
// code. MainOrder is the first row seen for the code and supplies the
// order-level fields; LineItems holds every row for the code (including
// MainOrder itself) in input order. Groups only live for the duration of one
// upload; they are never persisted.
type OrderGroup struct {
	ReferenceCode string
	MainOrder     RawRow
	LineItems     []RawRow
}

// UploadSummary reports what a reconciliation run changed. The JSON names
// match the response contract of the upload endpoint.
type UploadSummary struct {
	// NewOrders is the number of orders created by this run.
	NewOrders int `json:"newOrdersCount"`
	// NewSubOrders is the number of sub-orders created by this run.
	NewSubOrders int `json:"newSubOrdersCount"`
	// DuplicateSubOrders is the number of sub-orders skipped because their
	// suborder number already existed.
	DuplicateSubOrders int `json:"duplicateSubOrdersCount"`
}
