package repositories

import (
	"context"
	"errors"
	"time"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IOrderRepository operasi database pesanan checkout tersimulasi.
type IOrderRepository interface {
	Create(ctx context.Context, order *models.TemplateOrder) error
	FindByID(ctx context.Context, id string) (*models.TemplateOrder, error)
	MarkPaid(ctx context.Context, id string, paidAt time.Time) error
}

// OrderRepository implementasi di atas gorm.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) IOrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, order *models.TemplateOrder) error {
	err := r.db.WithContext(ctx).Create(order).Error
	if err != nil {
		configslog.Log.Error("OrderRepository.Create gagal", zap.Error(err))
	}
	return err
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*models.TemplateOrder, error) {
	var order models.TemplateOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id string, paidAt time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.TemplateOrder{}).
		Where("id = ? AND status = ?", id, models.OrderStatusPending).
		Updates(map[string]any{"status": models.OrderStatusPaid, "paid_at": paidAt})
	if result.Error != nil {
		configslog.Log.Error("OrderRepository.MarkPaid gagal", zap.String("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ IOrderRepository = (*OrderRepository)(nil)
