package internal

import (
	"strings"
	"time"
)

// AssetTypeOther is the pick-list sentinel that defers to CustomAssetType.
const AssetTypeOther = "Other"

type ManualLink struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// EquipmentRecord is one scanned or hand-entered unit.
type EquipmentRecord struct {
	Qty                 int          `json:"qty,omitempty"`
	AssetType           string       `json:"assetType,omitempty"`
	CustomAssetType     string       `json:"customAssetType,omitempty"`
	Manufacturer        string       `json:"manufacturer,omitempty"`
	Model               string       `json:"model,omitempty"`
	SerialNumber        string       `json:"serialNumber,omitempty"`
	Size                string       `json:"size,omitempty"`
	MfgYear             string       `json:"mfgYear,omitempty"`
	Location            string       `json:"location,omitempty"`
	Notes               string       `json:"notes,omitempty"`
	FilterSize          string       `json:"filterSize,omitempty"`
	FilterType          string       `json:"filterType,omitempty"`
	FilterMerv          string       `json:"filterMerv,omitempty"`
	FilterQuantity      string       `json:"filterQuantity,omitempty"`
	Voltage             string       `json:"voltage,omitempty"`
	Refrigerant         string       `json:"refrigerant,omitempty"`
	MaintenanceInterval string       `json:"maintenanceInterval,omitempty"`
	ManualLinks         []ManualLink `json:"manualLinks,omitempty"`
}

// Quantity returns Qty, treating unset or non-positive values as 1.
func (r EquipmentRecord) Quantity() int {
	if r.Qty < 1 {
		return 1
	}
	return r.Qty
}

// EffectiveAssetType resolves the "Other" sentinel to the free-text override when one is set.
func (r EquipmentRecord) EffectiveAssetType() string {
	if r.AssetType == AssetTypeOther && strings.TrimSpace(r.CustomAssetType) != "" {
		return strings.TrimSpace(r.CustomAssetType)
	}
	return r.AssetType
}

func (r EquipmentRecord) Exportable() bool {
	return strings.TrimSpace(r.Manufacturer) != "" &&
		strings.TrimSpace(r.Model) != "" &&
		strings.TrimSpace(r.AssetType) != ""
}

// ScannerData is the legacy 14-field batch shape accepted by the Master PMA export endpoint.
type ScannerData struct {
	Qty          int    `json:"Qty"`
	AssetType    string `json:"Asset Type"`
	Manufacturer string `json:"Manufacturer"`
	Model        string `json:"Model"`
	SerialNumber string `json:"Serial Number"`
	Size         string `json:"Size"`
	MfgYear      string `json:"MFG Year"`
	Voltage      string `json:"Voltage"`
	Refrigerant  string `json:"Refrigerant"`
	FilterSize   string `json:"Filter Size"`
	FilterQty    string `json:"Filter Qty"`
	Merv         string `json:"MERV"`
	Location     string `json:"Location"`
	Notes        string `json:"Notes"`
}

// ExportRow is one line of the Master PMA Estimate sheet.
type ExportRow struct {
	Qty          int    `json:"QTY"`
	AssetCode    string `json:"Asset Type & Description (COINS)"`
	MFG          string `json:"MFG"`
	Model        string `json:"MODEL"`
	SN           string `json:"SN"`
	Size         string `json:"SIZE"`
	MfgYear      string `json:"MFG Year"`
	CustID       string `json:"CUST ID"`
	Location     string `json:"LOCATION"`
	FilterChange string `json:"FILTER CHANGE"`
	CoilClean    string `json:"COIL CLEAN"`
	BeltSize     string `json:"Belt Size"`
	BeltQty      string `json:"Belt QTY per Unit"`
	FilterSize   string `json:"Filter Size"`
	FilterQty    string `json:"Filter QTY per Unit"`
}

type Project struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
}

// RegisterEntry is a committed record as stored in a project's register.
type RegisterEntry struct {
	ID        int64           `json:"id"`
	ProjectID string          `json:"projectId"`
	Position  int             `json:"position"`
	Record    EquipmentRecord `json:"record"`
	CreatedAt time.Time       `json:"createdAt"`
}
