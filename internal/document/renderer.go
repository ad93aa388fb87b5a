package document

import (
	"bytes"
	"fmt"
	"html/template"

	"backend/internal/model"

	"github.com/shopspring/decimal"
)

// slipDateFormat is the display format used everywhere on the slip.
const slipDateFormat = "02-01-2006"

// slipData is the fully-resolved view model fed to the template. All money
// values are pre-formatted to plain 2-decimal numerals so the fixed table
// layout never depends on locale grouping.
type slipData struct {
	Letterhead Letterhead

	LoadingSlipNo   string
	LoadingDate     string
	CustomerName    string
	CustomerAddress string
	FromCity        string
	ToCity          string
	TruckType       string
	VehicleNo       string
	DriverNumber    string
	VehicleType     string
	Material        string
	MaterialWeight  string
	Freight         string
	Detention       string
	Advance         string
	Balance         string
}

// Renderer turns a Receipt into the self-contained loading slip markup.
// Rendering is pure: it never touches the store and never mutates the
// receipt, and identical input yields byte-identical output.
type Renderer struct {
	letterhead Letterhead
	defaults   DisplayDefaults
	tmpl       *template.Template
}

func NewRenderer(letterhead Letterhead, defaults DisplayDefaults) *Renderer {
	return &Renderer{
		letterhead: letterhead,
		defaults:   defaults,
		tmpl:       template.Must(template.New("loading-slip").Parse(slipTemplate)),
	}
}

// Render produces the single-page A4 loading slip HTML for a receipt.
func (r *Renderer) Render(receipt *model.Receipt) (string, error) {
	data := slipData{
		Letterhead:      r.letterhead,
		LoadingSlipNo:   receipt.LoadingSlipNo,
		LoadingDate:     receipt.LoadingDate.Format(slipDateFormat),
		CustomerName:    receipt.CustomerName,
		CustomerAddress: receipt.CustomerAddress,
		FromCity:        receipt.FromCity,
		ToCity:          receipt.ToCity,
		TruckType:       fallback(receipt.TruckType, r.defaults.TruckType),
		VehicleNo:       receipt.VehicleNo,
		DriverNumber:    receipt.DriverNumber,
		VehicleType:     fallback(receipt.VehicleType, r.defaults.VehicleType),
		Material:        receipt.Material,
		MaterialWeight:  r.defaults.MaterialWeight,
		Freight:         money(receipt.Freight),
		Detention:       money(receipt.Detention),
		Advance:         money(receipt.Advance),
		Balance:         money(receipt.Balance),
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render loading slip: %w", err)
	}
	return buf.String(), nil
}

func fallback(value, def string) string {
	if value == "" {
		return def
	}
	return value
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
