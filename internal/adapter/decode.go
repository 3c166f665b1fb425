package adapter

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/xagcl/models"
)

func decodeStock(body []byte) (models.StockSnapshot, error) {
	var sr models.StockResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return models.StockSnapshot{}, fmt.Errorf("%w: decode stock response: %w", ErrMalformedResponse, err)
	}

	if sr.Accounts == nil || sr.PlusAccounts == nil || sr.NormalAccounts == nil {
		return models.StockSnapshot{}, fmt.Errorf("%w: stock response is missing counts", ErrMalformedResponse)
	}

	if *sr.Accounts < 0 || *sr.PlusAccounts < 0 || *sr.NormalAccounts < 0 {
		return models.StockSnapshot{}, fmt.Errorf("%w: stock response has negative counts", ErrMalformedResponse)
	}

	return models.StockSnapshot{
		Total:  *sr.Accounts,
		Plus:   *sr.PlusAccounts,
		Normal: *sr.NormalAccounts,
	}, nil
}

// classifyGenerate turns a generation body into a [models.GenerationResult].
//
// A "message" key marks a refusal regardless of the status code. Without it,
// a non-2xx status is reported through statusErr and a 2xx body must carry an
// account object.
func classifyGenerate(body []byte, statusErr error, requested models.Selection) (models.GenerationResult, error) {
	// Only the message key is decoded first; the other fields may have any
	// shape on a refusal.
	var rejection models.RejectionResponse
	if err := json.Unmarshal(body, &rejection); err == nil && rejection.Message != nil {
		return models.NewRejected(messageText(rejection.Message)), nil
	}

	if statusErr != nil {
		return models.GenerationResult{}, statusErr
	}

	var gr models.GenerateResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return models.GenerationResult{}, fmt.Errorf("%w: decode generate response: %w", ErrMalformedResponse, err)
	}

	if gr.Account == nil {
		return models.GenerationResult{}, fmt.Errorf("%w: generate response has neither account nor message", ErrMalformedResponse)
	}

	accountType := gr.Account.Type
	if accountType == "" {
		accountType = requested.Type
	}

	return models.NewGenerated(models.GeneratedAccount{
		Email:    gr.Account.Email,
		Password: gr.Account.Password,
		Username: gr.Account.Username,
		Type:     accountType,
		TestMode: gr.TestModeEnabled,
	}), nil
}

// messageText renders the message value; non-string messages are shown as
// raw JSON.
func messageText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	return string(raw)
}
