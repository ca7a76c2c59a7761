package models

// VendorBundle groups the games converted from one sheet. ExportDate is
// stamped once per batch, so every bundle of a conversion carries the same
// timestamp. TotalGames always equals len(Games).
type VendorBundle struct {
	VendorCode string  `json:"vendorCode"`
	WalletCode *string `json:"walletCode"`
	ExportDate string  `json:"exportDate"`
	TotalGames int     `json:"totalGames"`
	Games      []Game  `json:"games"`
}

// ExportDocument is the final export shape. Vendors is never nil: a batch
// in which every sheet was skipped marshals as {"vendors": []}.
type ExportDocument struct {
	Vendors []VendorBundle `json:"vendors"`
}
