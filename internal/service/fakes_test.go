package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeReceiptRepo is an in-memory ReceiptRepository that mirrors the store
// contract, including the unique loading_slip_no rejection.
type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*model.Receipt
	failWith error // when set, every call fails with this error
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*model.Receipt)}
}

func (f *fakeReceiptRepo) Create(_ context.Context, receipt *model.Receipt) error {
	if f.failWith != nil {
		return f.failWith
	}
	for _, existing := range f.receipts {
		if existing.LoadingSlipNo == receipt.LoadingSlipNo {
			return gorm.ErrDuplicatedKey
		}
	}
	receipt.ID = uuid.New()
	receipt.CreatedAt = time.Now()
	receipt.UpdatedAt = receipt.CreatedAt
	clone := *receipt
	f.receipts[receipt.ID] = &clone
	return nil
}

func (f *fakeReceiptRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Receipt, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	receipt, ok := f.receipts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *receipt
	return &clone, nil
}

func (f *fakeReceiptRepo) List(_ context.Context, page, limit int) ([]model.Receipt, int64, error) {
	if f.failWith != nil {
		return nil, 0, f.failWith
	}
	all := make([]model.Receipt, 0, len(f.receipts))
	for _, r := range f.receipts {
		all = append(all, *r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	total := int64(len(all))
	start := (page - 1) * limit
	if start >= len(all) {
		return nil, total, nil
	}
	end := start + limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total, nil
}

func (f *fakeReceiptRepo) Update(_ context.Context, receipt *model.Receipt) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.receipts[receipt.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	for id, existing := range f.receipts {
		if id != receipt.ID && existing.LoadingSlipNo == receipt.LoadingSlipNo {
			return gorm.ErrDuplicatedKey
		}
	}
	receipt.UpdatedAt = time.Now()
	clone := *receipt
	f.receipts[receipt.ID] = &clone
	return nil
}

func (f *fakeReceiptRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.receipts[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.receipts, id)
	return nil
}

func (f *fakeReceiptRepo) MaxSlipNumberWithPrefix(_ context.Context, prefix string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	max := ""
	for _, r := range f.receipts {
		if strings.HasPrefix(r.LoadingSlipNo, prefix) && r.LoadingSlipNo > max {
			max = r.LoadingSlipNo
		}
	}
	return max, nil
}

// fakeTxManager runs the callback without a real transaction.
type fakeTxManager struct{}

func (fakeTxManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// fakeConverter returns fixed bytes, or an error when failWith is set.
type fakeConverter struct {
	output   []byte
	failWith error
}

func (f *fakeConverter) Convert(_ context.Context, _ string) ([]byte, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	return f.output, nil
}
