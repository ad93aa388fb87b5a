package repository

import (
	"context"
	"errors"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *model.Receipt) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error)
	List(ctx context.Context, page, limit int) ([]model.Receipt, int64, error)
	Update(ctx context.Context, receipt *model.Receipt) error
	Delete(ctx context.Context, id uuid.UUID) error
	MaxSlipNumberWithPrefix(ctx context.Context, prefix string) (string, error)
}

type receiptRepository struct {
	db *gorm.DB
}

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *model.Receipt) error {
	return GetDB(ctx, r.db).Create(receipt).Error
}

func (r *receiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	var receipt model.Receipt
	if err := GetDB(ctx, r.db).First(&receipt, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) List(ctx context.Context, page, limit int) ([]model.Receipt, int64, error) {
	var receipts []model.Receipt
	var total int64

	db := GetDB(ctx, r.db)
	if err := db.Model(&model.Receipt{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Offset(offset).Limit(limit).Find(&receipts).Error; err != nil {
		return nil, 0, err
	}

	return receipts, total, nil
}

func (r *receiptRepository) Update(ctx context.Context, receipt *model.Receipt) error {
	return GetDB(ctx, r.db).Save(receipt).Error
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).Delete(&model.Receipt{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MaxSlipNumberWithPrefix returns the highest existing loading slip number
// starting with prefix, or "" when the prefix has no receipts yet. Ordering
// is lexicographic, which matches numeric order for the zero-padded suffix.
func (r *receiptRepository) MaxSlipNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var slipNo string
	err := GetDB(ctx, r.db).
		Model(&model.Receipt{}).
		Select("loading_slip_no").
		Where("loading_slip_no LIKE ?", prefix+"%").
		Order("loading_slip_no desc").
		Limit(1).
		Scan(&slipNo).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return slipNo, nil
}
