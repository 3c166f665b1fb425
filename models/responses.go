package models

import "encoding/json"

// StockResponse is the body of GET /api/stock. Counts are pointers so that a
// missing field can be told apart from a zero count.
type StockResponse struct {
	Accounts       *int `json:"accounts"`
	PlusAccounts   *int `json:"plus_accounts"`
	NormalAccounts *int `json:"normal_accounts"`
}

// AccountPayload is the "account" object of a successful generation body.
type AccountPayload struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Username string      `json:"username"`
	Type     AccountType `json:"type"`
}

// RejectionResponse picks the "message" key out of a POST /api/generate body.
// The generator reports refusals by adding that key instead of using the
// status code, so Message is kept raw and only its presence matters.
type RejectionResponse struct {
	Message json.RawMessage `json:"message"`
}

// GenerateResponse is the body of a successful POST /api/generate.
type GenerateResponse struct {
	Account         *AccountPayload `json:"account"`
	TestModeEnabled bool            `json:"test_mode_enabled"`
}
