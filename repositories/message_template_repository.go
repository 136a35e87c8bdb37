package repositories

import (
	"context"
	"errors"

	"undangan.link/configs/configslog"
	"undangan.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IMessageTemplateRepository operasi database template pesan massal.
type IMessageTemplateRepository interface {
	Create(ctx context.Context, tpl *models.MessageTemplate) error
	FindByID(ctx context.Context, id string) (*models.MessageTemplate, error)
	FindAll(ctx context.Context) ([]models.MessageTemplate, error)
	Update(ctx context.Context, tpl *models.MessageTemplate) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// MessageTemplateRepository implementasi di atas gorm.
type MessageTemplateRepository struct {
	db *gorm.DB
}

func NewMessageTemplateRepository(db *gorm.DB) IMessageTemplateRepository {
	return &MessageTemplateRepository{db: db}
}

func (r *MessageTemplateRepository) Create(ctx context.Context, tpl *models.MessageTemplate) error {
	err := r.db.WithContext(ctx).Create(tpl).Error
	if err != nil {
		configslog.Log.Error("MessageTemplateRepository.Create gagal", zap.Error(err))
	}
	return err
}

func (r *MessageTemplateRepository) FindByID(ctx context.Context, id string) (*models.MessageTemplate, error) {
	var tpl models.MessageTemplate
	err := r.db.WithContext(ctx).First(&tpl, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tpl, nil
}

func (r *MessageTemplateRepository) FindAll(ctx context.Context) ([]models.MessageTemplate, error) {
	var tpls []models.MessageTemplate
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&tpls).Error
	return tpls, err
}

func (r *MessageTemplateRepository) Update(ctx context.Context, tpl *models.MessageTemplate) error {
	err := r.db.WithContext(ctx).Save(tpl).Error
	if err != nil {
		configslog.Log.Error("MessageTemplateRepository.Update gagal", zap.String("id", tpl.ID), zap.Error(err))
	}
	return err
}

func (r *MessageTemplateRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.MessageTemplate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MessageTemplateRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MessageTemplate{}).Count(&count).Error
	return count, err
}

var _ IMessageTemplateRepository = (*MessageTemplateRepository)(nil)
