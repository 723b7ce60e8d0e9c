package types

import (
	"github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
)

// PostTransferPayload is the body of a transfer request.
type PostTransferPayload struct {
	// Receiver account address (hex, 0x-prefixed)
	// Required: true
	Address *string `json:"address"`

	// Target network identifier (configured alias or raw RPC endpoint URL)
	// Required: true
	Network *string `json:"network"`

	// Human-readable decimal amount of the native asset
	// Required: true
	Amount *string `json:"amount"`
}

// Validate validates this post transfer payload
func (m *PostTransferPayload) Validate(formats strfmt.Registry) error {
	var res []error

	if err := m.validateAddress(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateNetwork(formats); err != nil {
		res = append(res, err)
	}

	if err := m.validateAmount(formats); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

func (m *PostTransferPayload) validateAddress(_ strfmt.Registry) error {
	if err := validate.Required("address", "body", m.Address); err != nil {
		return err
	}

	return nil
}

func (m *PostTransferPayload) validateNetwork(_ strfmt.Registry) error {
	if err := validate.Required("network", "body", m.Network); err != nil {
		return err
	}

	return nil
}

func (m *PostTransferPayload) validateAmount(_ strfmt.Registry) error {
	if err := validate.Required("amount", "body", m.Amount); err != nil {
		return err
	}

	return nil
}

// TransferResponse is the body of a successful transfer.
type TransferResponse struct {
	// Required: true
	Success *bool `json:"success"`

	// Hex-encoded transaction hash
	// Required: true
	TxID *string `json:"tx_id"`

	// Explorer base URL + tx id
	// Required: true
	ExplorerURL *string `json:"explorer_url"`
}

// Validate validates this transfer response
func (m *TransferResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("success", "body", m.Success); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("tx_id", "body", m.TxID); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("explorer_url", "body", m.ExplorerURL); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}

// TransferErrorResponse is the body of a failed transfer.
type TransferErrorResponse struct {
	// Required: true
	Success *bool `json:"success"`

	// Human-readable description of the failed pipeline stage
	// Required: true
	Message *string `json:"message"`
}

// Validate validates this transfer error response
func (m *TransferErrorResponse) Validate(_ strfmt.Registry) error {
	var res []error

	if err := validate.Required("success", "body", m.Success); err != nil {
		res = append(res, err)
	}

	if err := validate.Required("message", "body", m.Message); err != nil {
		res = append(res, err)
	}

	if len(res) > 0 {
		return errors.CompositeValidationError(res...)
	}
	return nil
}
