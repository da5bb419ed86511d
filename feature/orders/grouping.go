package orders

import "order-manager/feature/orders/models"

// GroupRows partitions export rows into order groups keyed by reference code.
// The first row seen for a code becomes the group's MainOrder; every row for
// the code (the first included) is appended to LineItems. Both the group
// sequence and the line items within a group preserve first-seen input order.
//
// GroupRows assumes validated input: it does not drop or flag rows with empty
// key fields, and it performs no duplicate detection. Duplicates can only be
// recognized against persisted state, which is the reconciler's job.
func GroupRows(rows []models.RawRow) []*models.OrderGroup {
	groups := make([]*models.OrderGroup, 0, len(rows))
	index := make(map[string]*models.OrderGroup, len(rows))

	for _, row := range rows {
		g, ok := index[row.ReferenceCode]
		if !ok {
			g = &models.OrderGroup{
				ReferenceCode: row.ReferenceCode,
				MainOrder:     row,
			}
			index[row.ReferenceCode] = g
			groups = append(groups, g)
		}
		g.LineItems = append(g.LineItems, row)
	}

	return groups
}
