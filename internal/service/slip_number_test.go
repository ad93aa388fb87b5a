package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
)

func newTestService(repo *fakeReceiptRepo, at time.Time) *receiptService {
	svc := NewReceiptService(repo, fakeTxManager{}, nil, nil, nil).(*receiptService)
	svc.now = func() time.Time { return at }
	return svc
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestFinancialYearLabel(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"last day of FY", date(2025, time.March, 31), "24-25"},
		{"first day of FY", date(2025, time.April, 1), "25-26"},
		{"mid financial year", date(2024, time.November, 15), "24-25"},
		{"january uses previous year label", date(2026, time.January, 2), "25-26"},
		{"century wrap keeps two digits", date(2099, time.May, 1), "99-00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := financialYearLabel(tt.at); got != tt.want {
				t.Errorf("financialYearLabel(%v) = %q, want %q", tt.at, got, tt.want)
			}
		})
	}
}

func TestNextSlipNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		at       time.Time
		want     string
	}{
		{
			name: "first number of a fresh financial year",
			at:   date(2024, time.June, 1),
			want: "TPK/24-25/00001",
		},
		{
			name:     "increments the highest existing number",
			existing: []string{"TPK/24-25/00007", "TPK/24-25/00042", "TPK/24-25/00013"},
			at:       date(2024, time.June, 1),
			want:     "TPK/24-25/00043",
		},
		{
			name:     "previous financial year does not leak into the new one",
			existing: []string{"TPK/24-25/00042"},
			at:       date(2025, time.April, 1),
			want:     "TPK/25-26/00001",
		},
		{
			name:     "sequence grows past the five digit padding",
			existing: []string{"TPK/24-25/99999"},
			at:       date(2024, time.June, 1),
			want:     "TPK/24-25/100000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeReceiptRepo()
			for _, slipNo := range tt.existing {
				repo.receipts[uuid.New()] = &model.Receipt{ID: uuid.New(), LoadingSlipNo: slipNo}
			}

			svc := newTestService(repo, tt.at)
			got, err := svc.NextSlipNumber(context.Background())
			if err != nil {
				t.Fatalf("NextSlipNumber() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("NextSlipNumber() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextSlipNumberStoreError(t *testing.T) {
	repo := newFakeReceiptRepo()
	repo.failWith = errors.New("connection refused")

	svc := newTestService(repo, date(2024, time.June, 1))
	if _, err := svc.NextSlipNumber(context.Background()); err == nil {
		t.Fatal("NextSlipNumber() expected error when the store is unreachable")
	}
}
