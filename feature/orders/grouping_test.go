package orders_test

import (
	"testing"

	"order-manager/feature/orders"
	"order-manager/feature/orders/models"

	"github.com/stretchr/testify/assert"
)

func row(ref, suborder string) models.RawRow {
	return models.RawRow{
		ReferenceCode: ref,
		EEInvoiceNo:   "INV-" + ref,
		SuborderNo:    suborder,
		OrderDate:     "2024-03-01 10:00:00",
	}
}

func TestGroupRows(t *testing.T) {
	t.Run("Preserves First Seen Order", func(t *testing.T) {
		rows := []models.RawRow{
			row("R2", "S1"),
			row("R1", "S2"),
			row("R2", "S3"),
			row("R3", "S4"),
			row("R1", "S5"),
		}

		groups := orders.GroupRows(rows)

		assert.Len(t, groups, 3)
		assert.Equal(t, "R2", groups[0].ReferenceCode)
		assert.Equal(t, "R1", groups[1].ReferenceCode)
		assert.Equal(t, "R3", groups[2].ReferenceCode)
	})

	t.Run("First Row Becomes Main Order", func(t *testing.T) {
		first := row("R1", "S1")
		first.OrderStatus = "SHIPPED"
		second := row("R1", "S2")
		second.OrderStatus = "CANCELLED"

		groups := orders.GroupRows([]models.RawRow{first, second})

		assert.Len(t, groups, 1)
		assert.Equal(t, "SHIPPED", groups[0].MainOrder.OrderStatus)
	})

	t.Run("Line Items Keep Input Order And Include First Row", func(t *testing.T) {
		rows := []models.RawRow{
			row("R1", "S1"),
			row("R2", "SX"),
			row("R1", "S2"),
			row("R1", "S3"),
		}

		groups := orders.GroupRows(rows)

		assert.Len(t, groups[0].LineItems, 3)
		assert.Equal(t, "S1", groups[0].LineItems[0].SuborderNo)
		assert.Equal(t, "S2", groups[0].LineItems[1].SuborderNo)
		assert.Equal(t, "S3", groups[0].LineItems[2].SuborderNo)
	})

	t.Run("Every Row Lands In Exactly One Group", func(t *testing.T) {
		rows := []models.RawRow{
			row("R1", "S1"),
			row("R2", "S2"),
			row("R1", "S3"),
		}

		groups := orders.GroupRows(rows)

		total := 0
		seen := map[string]bool{}
		for _, g := range groups {
			for _, item := range g.LineItems {
				total++
				assert.Equal(t, g.ReferenceCode, item.ReferenceCode)
				assert.False(t, seen[item.SuborderNo])
				seen[item.SuborderNo] = true
			}
		}
		assert.Equal(t, len(rows), total)
	})

	t.Run("No Deduplication Within Batch", func(t *testing.T) {
		// Two rows with the same suborder number stay in the group; only the
		// reconciler can tell what is a duplicate.
		rows := []models.RawRow{
			row("R1", "S1"),
			row("R1", "S1"),
		}

		groups := orders.GroupRows(rows)

		assert.Len(t, groups, 1)
		assert.Len(t, groups[0].LineItems, 2)
	})

	t.Run("Empty Input", func(t *testing.T) {
		assert.Empty(t, orders.GroupRows(nil))
	})
}

func TestValidateRows(t *testing.T) {
	t.Run("Valid Batch", func(t *testing.T) {
		assert.NoError(t, orders.ValidateRows([]models.RawRow{row("R1", "S1")}))
	})

	t.Run("Missing Reference Code", func(t *testing.T) {
		bad := row("", "S1")
		err := orders.ValidateRows([]models.RawRow{row("R1", "S1"), bad})

		var ve *orders.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, 1, ve.Row)
		assert.Equal(t, "Reference Code", ve.Field)
	})

	t.Run("Missing Suborder No", func(t *testing.T) {
		bad := row("R1", "")
		err := orders.ValidateRows([]models.RawRow{bad})

		var ve *orders.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "Suborder No", ve.Field)
	})

	t.Run("Unparseable Order Date", func(t *testing.T) {
		bad := row("R1", "S1")
		bad.OrderDate = "not a date"
		err := orders.ValidateRows([]models.RawRow{bad})

		var ve *orders.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "Order Date", ve.Field)
	})
}
