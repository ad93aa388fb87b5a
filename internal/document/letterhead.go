package document

import "os"

// Letterhead holds the fixed identity printed on every loading slip. The
// company block never changes; bank and contact details differ between
// branches, so they are configuration with canonical defaults.
type Letterhead struct {
	Brand       string // brand line above the company name
	CompanyName string
	RegOffice   string
	GSTIN       string
	PAN         string
	Email       string
	Phone       string
	Website     string

	BankPayee   string
	BankAccount string
	BankIFSC    string
	BankUPI     string

	Jurisdiction string // city named in the terms & conditions
}

// DisplayDefaults are template-level fallbacks for optional fields. These
// are display substitutes only, never business defaults written to storage.
type DisplayDefaults struct {
	TruckType      string
	VehicleType    string
	MaterialWeight string
}

// DefaultLetterhead returns the canonical TransportKART letterhead,
// overridable per deployment through environment variables.
func DefaultLetterhead() Letterhead {
	lh := Letterhead{
		Brand:        "SmART-EMS",
		CompanyName:  "TRANSPORTKART",
		RegOffice:    "Reg. Office : H-48, Shriram Colony, Loni, Ghaziabad, Uttar Pradesh - 201102",
		GSTIN:        "09DTIPK6278L1ZU",
		PAN:          "DTIPK6278L",
		Email:        "connect@transportkart.com",
		Phone:        "+91-7827568785",
		Website:      "www.transportkart.com",
		BankPayee:    "SMART EMS",
		BankAccount:  "459900210005230",
		BankIFSC:     "PUNB0455900",
		BankUPI:      "transportkart@axl",
		Jurisdiction: "GHAZIABAD",
	}

	if v := os.Getenv("BANK_PAYEE_NAME"); v != "" {
		lh.BankPayee = v
	}
	if v := os.Getenv("BANK_ACCOUNT_NUMBER"); v != "" {
		lh.BankAccount = v
	}
	if v := os.Getenv("BANK_IFSC_CODE"); v != "" {
		lh.BankIFSC = v
	}
	if v := os.Getenv("BANK_UPI_ID"); v != "" {
		lh.BankUPI = v
	}
	if v := os.Getenv("COMPANY_EMAIL"); v != "" {
		lh.Email = v
	}
	if v := os.Getenv("COMPANY_PHONE"); v != "" {
		lh.Phone = v
	}

	return lh
}

// DefaultDisplayDefaults returns the fallbacks used by the printed table.
func DefaultDisplayDefaults() DisplayDefaults {
	return DisplayDefaults{
		TruckType:      "Full Load",
		VehicleType:    "As Per Availability",
		MaterialWeight: "18 Ton",
	}
}
