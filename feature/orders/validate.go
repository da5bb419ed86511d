package orders

import "order-manager/feature/orders/models"

// ValidateRows checks that every row carries the fields the reconciler
// depends on. It returns the first problem found as a *ValidationError. The
// grouping and reconciliation stages assume input that passed this check.
func ValidateRows(rows []models.RawRow) error {
	for i, row := range rows {
		if row.ReferenceCode == "" {
			return &ValidationError{Row: i, Field: "Reference Code", Reason: "must not be empty"}
		}
		if row.SuborderNo == "" {
			return &ValidationError{Row: i, Field: "Suborder No", Reason: "must not be empty"}
		}
		if _, err := models.ParseOrderDate(row.OrderDate); err != nil {
			return &ValidationError{Row: i, Field: "Order Date", Reason: err.Error()}
		}
	}
	return nil
}
