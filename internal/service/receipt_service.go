package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"backend/internal/document"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/websocket"
	"backend/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// --- DTOs ---

// ReceiptPayload is the create/update request body. Money fields arrive as
// text (form input); the service normalizes them to decimals. There is no
// balance field: balance is always derived server-side.
type ReceiptPayload struct {
	LoadingSlipNo   string `json:"loading_slip_no"`
	LoadingDate     string `json:"loading_date"` // 2006-01-02, 02-01-2006 or RFC3339
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	FromCity        string `json:"from_city"`
	ToCity          string `json:"to_city"`
	TruckType       string `json:"truck_type"`
	VehicleNo       string `json:"vehicle_no"`
	DriverNumber    string `json:"driver_number"`
	VehicleType     string `json:"vehicle_type"`
	Material        string `json:"material"`
	Ownership       string `json:"ownership"`
	Freight         string `json:"freight"`
	Detention       string `json:"detention"`
	Advance         string `json:"advance"`
	Remark          string `json:"remark"`
}

type ReceiptResponse struct {
	ID              string `json:"id"`
	LoadingSlipNo   string `json:"loading_slip_no"`
	LoadingDate     string `json:"loading_date"` // DD-MM-YYYY
	CustomerName    string `json:"customer_name"`
	CustomerAddress string `json:"customer_address"`
	FromCity        string `json:"from_city"`
	ToCity          string `json:"to_city"`
	TruckType       string `json:"truck_type"`
	VehicleNo       string `json:"vehicle_no"`
	DriverNumber    string `json:"driver_number"`
	VehicleType     string `json:"vehicle_type"`
	Material        string `json:"material"`
	Ownership       string `json:"ownership"`
	Freight         string `json:"freight"`
	Detention       string `json:"detention"`
	Advance         string `json:"advance"`
	Balance         string `json:"balance"`
	Remark          string `json:"remark"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// ReceiptSummary carries just the columns the list view needs.
type ReceiptSummary struct {
	ID            string `json:"id"`
	LoadingSlipNo string `json:"loading_slip_no"`
	CustomerName  string `json:"customer_name"`
	LoadingDate   string `json:"loading_date"` // DD-MM-YYYY
	FromCity      string `json:"from_city"`
	ToCity        string `json:"to_city"`
	VehicleNo     string `json:"vehicle_no"`
	Freight       string `json:"freight"`
	Balance       string `json:"balance"`
	CreatedAt     string `json:"created_at"` // DD-MM-YYYY HH:mm
}

// --- Interface ---

type ReceiptService interface {
	CreateReceipt(ctx context.Context, req ReceiptPayload) (*ReceiptResponse, error)
	GetReceipt(ctx context.Context, id string) (*ReceiptResponse, error)
	ListReceipts(ctx context.Context, page, limit int) ([]ReceiptSummary, int64, error)
	UpdateReceipt(ctx context.Context, id string, req ReceiptPayload) (*ReceiptResponse, error)
	DeleteReceipt(ctx context.Context, id string) error
	NextSlipNumber(ctx context.Context) (string, error)
	DownloadPDF(ctx context.Context, id string) ([]byte, string, error)
}

type receiptService struct {
	repo      repository.ReceiptRepository
	txManager repository.TransactionManager
	renderer  *document.Renderer
	converter document.Converter
	hub       *websocket.Hub
	now       func() time.Time
}

func NewReceiptService(
	repo repository.ReceiptRepository,
	txManager repository.TransactionManager,
	renderer *document.Renderer,
	converter document.Converter,
	hub *websocket.Hub,
) ReceiptService {
	return &receiptService{
		repo:      repo,
		txManager: txManager,
		renderer:  renderer,
		converter: converter,
		hub:       hub,
		now:       time.Now,
	}
}

// dateLayouts accepted for loading_date input, tried in order.
var dateLayouts = []string{"2006-01-02", "02-01-2006", time.RFC3339}

// requiredFields pairs each payload field name with an accessor, keeping the
// missing-field report aligned with the JSON names clients actually send.
var requiredFields = []struct {
	name  string
	value func(ReceiptPayload) string
}{
	{"loading_slip_no", func(p ReceiptPayload) string { return p.LoadingSlipNo }},
	{"customer_name", func(p ReceiptPayload) string { return p.CustomerName }},
	{"customer_address", func(p ReceiptPayload) string { return p.CustomerAddress }},
	{"from_city", func(p ReceiptPayload) string { return p.FromCity }},
	{"to_city", func(p ReceiptPayload) string { return p.ToCity }},
	{"vehicle_no", func(p ReceiptPayload) string { return p.VehicleNo }},
	{"driver_number", func(p ReceiptPayload) string { return p.DriverNumber }},
	{"vehicle_type", func(p ReceiptPayload) string { return p.VehicleType }},
	{"material", func(p ReceiptPayload) string { return p.Material }},
	{"ownership", func(p ReceiptPayload) string { return p.Ownership }},
	{"truck_type", func(p ReceiptPayload) string { return p.TruckType }},
}

// validatePayload returns the names of missing or invalid fields. An empty
// slice means the payload is valid; validation never returns an error.
func validatePayload(req ReceiptPayload) []string {
	var fields []string
	for _, rf := range requiredFields {
		if strings.TrimSpace(rf.value(req)) == "" {
			fields = append(fields, rf.name)
		}
	}

	if req.Ownership != "" && !model.ValidOwnership(req.Ownership) {
		fields = append(fields, "ownership")
	}

	freight, err := decimal.NewFromString(strings.TrimSpace(req.Freight))
	if strings.TrimSpace(req.Freight) == "" || err != nil || freight.IsNegative() {
		fields = append(fields, "freight")
	}

	for _, opt := range []struct {
		name  string
		value string
	}{{"detention", req.Detention}, {"advance", req.Advance}} {
		v := strings.TrimSpace(opt.value)
		if v == "" {
			continue
		}
		if d, err := decimal.NewFromString(v); err == nil && d.IsNegative() {
			fields = append(fields, opt.name)
		}
	}

	if strings.TrimSpace(req.LoadingDate) != "" {
		if _, err := parseDate(req.LoadingDate); err != nil {
			fields = append(fields, "loading_date")
		}
	} else {
		fields = append(fields, "loading_date")
	}

	return fields
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", value)
}

// parseAmount coerces optional money input, defaulting absent or
// unparseable values to zero.
func parseAmount(value string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// computeBalance derives the remaining amount owed, rounded to two decimal
// places. It runs on every write; the store never sees a caller-supplied
// balance.
func computeBalance(freight, detention, advance decimal.Decimal) decimal.Decimal {
	return freight.Add(detention).Sub(advance).Round(2)
}

// applyPayload writes the normalized payload onto the receipt and re-derives
// the balance. validatePayload must have passed first.
func applyPayload(receipt *model.Receipt, req ReceiptPayload) error {
	loadingDate, err := parseDate(req.LoadingDate)
	if err != nil {
		return apperror.NewBadRequest("Invalid loading date: " + err.Error())
	}

	receipt.LoadingSlipNo = strings.TrimSpace(req.LoadingSlipNo)
	receipt.LoadingDate = loadingDate
	receipt.CustomerName = strings.TrimSpace(req.CustomerName)
	receipt.CustomerAddress = strings.TrimSpace(req.CustomerAddress)
	receipt.FromCity = strings.TrimSpace(req.FromCity)
	receipt.ToCity = strings.TrimSpace(req.ToCity)
	receipt.TruckType = strings.TrimSpace(req.TruckType)
	receipt.VehicleNo = strings.TrimSpace(req.VehicleNo)
	receipt.DriverNumber = strings.TrimSpace(req.DriverNumber)
	receipt.VehicleType = strings.TrimSpace(req.VehicleType)
	receipt.Material = strings.TrimSpace(req.Material)
	receipt.Ownership = req.Ownership
	receipt.Freight = parseAmount(req.Freight).Round(2)
	receipt.Detention = parseAmount(req.Detention).Round(2)
	receipt.Advance = parseAmount(req.Advance).Round(2)
	receipt.Balance = computeBalance(receipt.Freight, receipt.Detention, receipt.Advance)
	receipt.Remark = req.Remark
	return nil
}

// --- Implementation ---

func (s *receiptService) CreateReceipt(ctx context.Context, req ReceiptPayload) (*ReceiptResponse, error) {
	if fields := validatePayload(req); len(fields) > 0 {
		return nil, apperror.NewValidationError(fields)
	}

	var receipt model.Receipt
	if err := applyPayload(&receipt, req); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, &receipt); err != nil {
		if isDuplicateKey(err) {
			return nil, apperror.ErrDuplicateSlipNumber
		}
		return nil, fmt.Errorf("failed to create receipt: %w", err)
	}

	s.broadcast("receipt.created", &receipt)
	return toReceiptResponse(&receipt), nil
}

func (s *receiptService) GetReceipt(ctx context.Context, id string) (*ReceiptResponse, error) {
	receipt, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) ListReceipts(ctx context.Context, page, limit int) ([]ReceiptSummary, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}

	receipts, total, err := s.repo.List(ctx, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch receipts: %w", err)
	}

	summaries := make([]ReceiptSummary, 0, len(receipts))
	for i := range receipts {
		summaries = append(summaries, toReceiptSummary(&receipts[i]))
	}
	return summaries, total, nil
}

func (s *receiptService) UpdateReceipt(ctx context.Context, id string, req ReceiptPayload) (*ReceiptResponse, error) {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrReceiptNotFound
	}

	if fields := validatePayload(req); len(fields) > 0 {
		return nil, apperror.NewValidationError(fields)
	}

	var receipt *model.Receipt
	err = s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var findErr error
		receipt, findErr = s.repo.FindByID(txCtx, receiptID)
		if findErr != nil {
			if errors.Is(findErr, gorm.ErrRecordNotFound) {
				return apperror.ErrReceiptNotFound
			}
			return fmt.Errorf("failed to load receipt: %w", findErr)
		}

		if applyErr := applyPayload(receipt, req); applyErr != nil {
			return applyErr
		}

		if updateErr := s.repo.Update(txCtx, receipt); updateErr != nil {
			if isDuplicateKey(updateErr) {
				return apperror.ErrDuplicateSlipNumber
			}
			return fmt.Errorf("failed to update receipt: %w", updateErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("receipt.updated", receipt)
	return toReceiptResponse(receipt), nil
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return apperror.ErrReceiptNotFound
	}

	if err := s.repo.Delete(ctx, receiptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrReceiptNotFound
		}
		return fmt.Errorf("failed to delete receipt: %w", err)
	}

	s.broadcast("receipt.deleted", &model.Receipt{ID: receiptID})
	return nil
}

// DownloadPDF renders the receipt's loading slip and converts it to PDF
// bytes. The second return value is the slip number for the download
// filename. A failed conversion returns an error, never truncated bytes.
func (s *receiptService) DownloadPDF(ctx context.Context, id string) ([]byte, string, error) {
	receipt, err := s.findByID(ctx, id)
	if err != nil {
		return nil, "", err
	}

	if s.converter == nil {
		return nil, "", apperror.ErrRendererUnavailable
	}

	html, err := s.renderer.Render(receipt)
	if err != nil {
		return nil, "", apperror.ErrRenderFailed
	}

	pdf, err := s.converter.Convert(ctx, html)
	if err != nil {
		return nil, "", apperror.ErrRenderFailed
	}

	return pdf, receipt.LoadingSlipNo, nil
}

func (s *receiptService) findByID(ctx context.Context, id string) (*model.Receipt, error) {
	receiptID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.ErrReceiptNotFound
	}

	receipt, err := s.repo.FindByID(ctx, receiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to load receipt: %w", err)
	}
	return receipt, nil
}

// broadcast pushes a receipt change event to connected web clients. It is
// best-effort: a missing hub or a full dispatch queue never blocks the
// request that triggered it.
func (s *receiptService) broadcast(event string, receipt *model.Receipt) {
	if s.hub == nil {
		return
	}
	msg, err := json.Marshal(map[string]string{
		"event":           event,
		"id":              receipt.ID.String(),
		"loading_slip_no": receipt.LoadingSlipNo,
	})
	if err != nil {
		return
	}
	select {
	case s.hub.Broadcast <- msg:
	default:
	}
}

// isDuplicateKey reports whether err is a unique-constraint violation on
// insert/update (Postgres SQLSTATE 23505).
func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// --- Mapping ---

const (
	displayDateFormat     = "02-01-2006"
	displayDateTimeFormat = "02-01-2006 15:04"
)

func toReceiptResponse(r *model.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		ID:              r.ID.String(),
		LoadingSlipNo:   r.LoadingSlipNo,
		LoadingDate:     r.LoadingDate.Format(displayDateFormat),
		CustomerName:    r.CustomerName,
		CustomerAddress: r.CustomerAddress,
		FromCity:        r.FromCity,
		ToCity:          r.ToCity,
		TruckType:       r.TruckType,
		VehicleNo:       r.VehicleNo,
		DriverNumber:    r.DriverNumber,
		VehicleType:     r.VehicleType,
		Material:        r.Material,
		Ownership:       r.Ownership,
		Freight:         r.Freight.StringFixed(2),
		Detention:       r.Detention.StringFixed(2),
		Advance:         r.Advance.StringFixed(2),
		Balance:         r.Balance.StringFixed(2),
		Remark:          r.Remark,
		CreatedAt:       r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       r.UpdatedAt.Format(time.RFC3339),
	}
}

func toReceiptSummary(r *model.Receipt) ReceiptSummary {
	return ReceiptSummary{
		ID:            r.ID.String(),
		LoadingSlipNo: r.LoadingSlipNo,
		CustomerName:  r.CustomerName,
		LoadingDate:   r.LoadingDate.Format(displayDateFormat),
		FromCity:      r.FromCity,
		ToCity:        r.ToCity,
		VehicleNo:     r.VehicleNo,
		Freight:       r.Freight.StringFixed(2),
		Balance:       r.Balance.StringFixed(2),
		CreatedAt:     r.CreatedAt.Format(displayDateTimeFormat),
	}
}
