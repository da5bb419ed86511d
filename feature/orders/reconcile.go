package orders

import (
	"context"
	"errors"

	"order-manager/feature/orders/models"

	"gorm.io/gorm"
)

// Reconciler applies grouped export batches to the database. It only ever
// creates records: an order that already exists for its (reference code,
// invoice number) pair is reused as the owner for new sub-orders and its
// fields are left untouched, and a sub-order whose number already exists is
// skipped.
type Reconciler struct {
	db *gorm.DB
}

// NewReconciler creates a reconciler bound to the given database handle.
func NewReconciler(db *gorm.DB) *Reconciler {
	return &Reconciler{db: db}
}

// Reconcile writes every previously-unseen order and sub-order from groups
// inside a single transaction and reports what it changed. Groups and their
// line items are processed strictly in order, one lookup or write at a time;
// a sub-order insert needs the identity produced by its owning order's
// lookup or insert.
//
// Any lookup or write failure rolls back the entire batch and the returned
// summary is zero: counters describing rolled-back work are meaningless.
// Re-running Reconcile with the same batch after a successful commit creates
// nothing and counts every line item as a duplicate.
func (r *Reconciler) Reconcile(ctx context.Context, groups []*models.OrderGroup) (models.UploadSummary, error) {
	var summary models.UploadSummary

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, g := range groups {
			owner, err := findOrder(tx, g.ReferenceCode, g.MainOrder.EEInvoiceNo)
			if err != nil {
				return err
			}

			if owner == nil {
				order, err := g.MainOrder.ToOrder()
				if err != nil {
					return err
				}
				if err := tx.Create(&order).Error; err != nil {
					return classifyStoreError(err)
				}
				owner = &order
				summary.NewOrders++
			}

			for _, item := range g.LineItems {
				exists, err := subOrderExists(tx, item.SuborderNo)
				if err != nil {
					return err
				}
				if exists {
					summary.DuplicateSubOrders++
					continue
				}

				sub := item.ToSubOrder(owner.ID)
				if err := tx.Create(&sub).Error; err != nil {
					return classifyStoreError(err)
				}
				summary.NewSubOrders++
			}
		}
		return nil
	})
	if err != nil {
		return models.UploadSummary{}, err
	}

	return summary, nil
}

// findOrder looks up an order by its unique (reference code, invoice number)
// pair. A missing order is not an error.
func findOrder(tx *gorm.DB, referenceCode, invoiceNo string) (*models.Order, error) {
	var order models.Order
	err := tx.Where("reference_code = ? AND ee_invoice_no = ?", referenceCode, invoiceNo).
		First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return &order, nil
}

// subOrderExists reports whether a sub-order with the given number is already
// persisted, under any order.
func subOrderExists(tx *gorm.DB, suborderNo string) (bool, error) {
	var count int64
	err := tx.Model(&models.SubOrder{}).
		Where("suborder_no = ?", suborderNo).
		Count(&count).Error
	if err != nil {
		return false, classifyStoreError(err)
	}
	return count > 0, nil
}
