package orders

import (
	"context"

	"order-manager/feature/orders/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles order upload and retrieval operations.
type Service struct {
	logger     *zap.Logger
	db         *gorm.DB
	reconciler *Reconciler
}

// NewService creates a new orders service.
func NewService(logger *zap.Logger, db *gorm.DB) *Service {
	return &Service{
		logger:     logger,
		db:         db,
		reconciler: NewReconciler(db),
	}
}

// UploadRows validates, groups, and reconciles one export batch. Validation
// failures surface before any transaction is opened.
func (s *Service) UploadRows(ctx context.Context, rows []models.RawRow) (models.UploadSummary, error) {
	if err := ValidateRows(rows); err != nil {
		return models.UploadSummary{}, err
	}

	groups := GroupRows(rows)
	s.logger.Info("Reconciling export batch",
		zap.Int("rows", len(rows)),
		zap.Int("groups", len(groups)),
	)

	summary, err := s.reconciler.Reconcile(ctx, groups)
	if err != nil {
		return models.UploadSummary{}, err
	}

	s.logger.Info("Export batch committed",
		zap.Int("new_orders", summary.NewOrders),
		zap.Int("new_sub_orders", summary.NewSubOrders),
		zap.Int("duplicate_sub_orders", summary.DuplicateSubOrders),
	)
	return summary, nil
}

// ListOrders returns all persisted orders with their sub-orders, newest
// order date first.
func (s *Service) ListOrders(ctx context.Context) ([]models.Order, error) {
	var result []models.Order
	err := s.db.WithContext(ctx).
		Preload("SubOrders").
		Order("order_date DESC").
		Find(&result).Error
	if err != nil {
		return nil, classifyStoreError(err)
	}
	return result, nil
}
