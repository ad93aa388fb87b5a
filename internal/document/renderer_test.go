package document

import (
	"strings"
	"testing"
	"time"

	"backend/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func testReceipt() *model.Receipt {
	return &model.Receipt{
		ID:              uuid.MustParse("7b4a1be4-98a7-4f41-9f3f-222222222222"),
		LoadingSlipNo:   "TPK/24-25/00007",
		LoadingDate:     time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC),
		CustomerName:    "Acme Traders",
		CustomerAddress: "14 Market Road, Delhi",
		FromCity:        "Delhi",
		ToCity:          "Mumbai",
		TruckType:       "Full Load",
		VehicleNo:       "UP14 AB 1234",
		DriverNumber:    "9876543210",
		VehicleType:     "32ft Container",
		Material:        "Steel Coils",
		Ownership:       model.OwnershipTransportKART,
		Freight:         decimal.NewFromInt(5000),
		Detention:       decimal.NewFromInt(200),
		Advance:         decimal.NewFromInt(1000),
		Balance:         decimal.NewFromInt(4200),
	}
}

func testRenderer() *Renderer {
	return NewRenderer(DefaultLetterhead(), DefaultDisplayDefaults())
}

func TestRenderIsDeterministic(t *testing.T) {
	r := testRenderer()
	receipt := testReceipt()

	first, err := r.Render(receipt)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	second, err := r.Render(receipt)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if first != second {
		t.Error("rendering the same receipt twice produced different markup")
	}
}

func TestRenderContents(t *testing.T) {
	r := testRenderer()
	html, err := r.Render(testReceipt())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	wantFragments := []string{
		"TPK/24-25/00007",
		"15-06-2024",              // DD-MM-YYYY loading date
		"Acme Traders",
		"Delhi - Mumbai",          // route cell
		"UP14 AB 1234",
		"<td>5000.00</td>",        // freight cell: plain 2-decimal numerals
		"<span>200.00</span>",     // detention
		"<span>1000.00</span>",    // advance
		"<span>4200.00</span>",    // balance
		"TRANSPORTKART",
		"GSTIN : 09DTIPK6278L1ZU", // letterhead tax identifiers
		"459900210005230",         // bank account
		"PUNB0455900",             // IFSC
		"Terms &amp; Conditions",
		"Signing Authority",
	}
	for _, fragment := range wantFragments {
		if !strings.Contains(html, fragment) {
			t.Errorf("rendered markup missing %q", fragment)
		}
	}

	if strings.Count(html, "GHAZIABAD") != 1 {
		t.Error("jurisdiction should appear exactly once in the terms list")
	}
}

func TestRenderDisplayFallbacks(t *testing.T) {
	r := testRenderer()
	receipt := testReceipt()
	receipt.TruckType = ""
	receipt.VehicleType = ""

	html, err := r.Render(receipt)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(html, "Full Load") {
		t.Error("empty truck type should fall back to Full Load in the table")
	}
	if !strings.Contains(html, "As Per Availability") {
		t.Error("empty vehicle type should fall back to the placeholder")
	}
}

func TestRenderEscapesCustomerInput(t *testing.T) {
	r := testRenderer()
	receipt := testReceipt()
	receipt.CustomerName = "<script>alert(1)</script>"

	html, err := r.Render(receipt)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if strings.Contains(html, "<script>alert(1)</script>") {
		t.Error("customer input must be escaped in the rendered markup")
	}
}

func TestRenderDoesNotMutateReceipt(t *testing.T) {
	r := testRenderer()
	receipt := testReceipt()
	truckType := receipt.TruckType

	if _, err := r.Render(receipt); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if receipt.TruckType != truckType {
		t.Error("Render() mutated the receipt")
	}
}
