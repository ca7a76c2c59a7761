package models

// Game is one exported game record. Downstream consumers require every
// field to be present even when null, so none of the tags use omitempty.
// Platform, RTP and UpdateDate pass spreadsheet cell values through as-is
// (string or number). Type, TypeName, FreeGameAvailable and ImageURL are
// not derived from spreadsheet content and stay null.
type Game struct {
	VendorCode        string  `json:"vendorCode"`
	Code              string  `json:"code"`
	Name              *string `json:"name"`
	Image             *string `json:"image"`
	Category          *string `json:"category"`
	Type              *string `json:"type"`
	TypeName          *string `json:"typeName"`
	Platform          any     `json:"platform"`
	FreeGameAvailable *bool   `json:"freeGameAvailable"`
	IsPaidGame        bool    `json:"isPaidGame"`
	ImageURL          *string `json:"imageUrl"`
	IsJackpotGame     bool    `json:"isJackpotGame"`
	IsHotGame         bool    `json:"isHotGame"`
	Turnover          float64 `json:"turnover"`
	Sort              float64 `json:"sort"`
	RTP               any     `json:"rtp"`
	UpdateDate        any     `json:"updateDate"`
}
