package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fleet ownership categories printed on the slip.
const (
	OwnershipTransportKART  = "TransportKART"
	OwnershipStateLogistics = "State Logistics"
)

// ValidOwnership reports whether the value is one of the fixed fleet categories.
func ValidOwnership(v string) bool {
	return v == OwnershipTransportKART || v == OwnershipStateLogistics
}

// Receipt represents one physical loading slip issued for a freight movement.
// Balance is derived (freight + detention - advance) and is never taken from
// the client; the service layer recomputes it on every write.
type Receipt struct {
	ID              uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	LoadingSlipNo   string          `gorm:"type:varchar(30);uniqueIndex;not null" json:"loading_slip_no"` // TPK/{FY}/{seq:05d}
	LoadingDate     time.Time       `gorm:"type:date;not null" json:"loading_date"`
	CustomerName    string          `gorm:"type:varchar(255);not null" json:"customer_name"`
	CustomerAddress string          `gorm:"type:text;not null" json:"customer_address"`
	FromCity        string          `gorm:"type:varchar(100);not null" json:"from_city"`
	ToCity          string          `gorm:"type:varchar(100);not null" json:"to_city"`
	TruckType       string          `gorm:"type:varchar(50);not null" json:"truck_type"`
	VehicleNo       string          `gorm:"type:varchar(20);not null;index" json:"vehicle_no"`
	DriverNumber    string          `gorm:"type:varchar(20);not null" json:"driver_number"`
	VehicleType     string          `gorm:"type:varchar(50);not null" json:"vehicle_type"`
	Material        string          `gorm:"type:varchar(255);not null" json:"material"`
	Ownership       string          `gorm:"type:varchar(30);not null" json:"ownership"` // TransportKART, State Logistics
	Freight         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"freight"`
	Detention       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"detention"`
	Advance         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"advance"`
	Balance         decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"` // freight + detention - advance
	Remark          string          `gorm:"type:text" json:"remark"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
