package chapa

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// TransferOptions is the request body for a single outbound payout.
type TransferOptions struct {
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number" validate:"required"`
	Amount        string `json:"amount" validate:"required"`
	Currency      string `json:"currency,omitempty"`
	Reference     string `json:"reference,omitempty"`
	BankCode      int    `json:"bank_code" validate:"required"`
}

// VerifyTransferData is the detail record behind a transfer verification.
type VerifyTransferData struct {
	AccountName         string    `json:"account_name"`
	AccountNumber       string    `json:"account_number"`
	Mobile              *string   `json:"mobile"`
	Currency            string    `json:"currency"`
	Amount              float64   `json:"amount"`
	Charge              float64   `json:"charge"`
	Mode                string    `json:"mode"`
	TransferMethod      string    `json:"transfer_method"`
	Narration           *string   `json:"narration"`
	ChapaTransferID     string    `json:"chapa_transfer_id"`
	BankCode            int       `json:"bank_code"`
	BankName            string    `json:"bank_name"`
	CrossPartyReference *string   `json:"cross_party_reference"`
	IPAddress           string    `json:"ip_address"`
	Status              string    `json:"status"`
	TxRef               string    `json:"tx_ref"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// BulkEntry is one recipient inside a bulk transfer request.
type BulkEntry struct {
	AccountName   string `json:"account_name,omitempty"`
	AccountNumber string `json:"account_number" validate:"required"`
	Amount        string `json:"amount" validate:"required"`
	Reference     string `json:"reference,omitempty"`
	BankCode      int    `json:"bank_code" validate:"required"`
}

// BulkTransferOptions is the request body bundling multiple payouts under
// one batch.
type BulkTransferOptions struct {
	Title    string      `json:"title" validate:"required"`
	Currency string      `json:"currency" validate:"required"`
	BulkData []BulkEntry `json:"bulk_data" validate:"required,min=1,dive"`
}

// BulkTransferData identifies a queued bulk transfer batch.
type BulkTransferData struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// TransferRecord is one entry from the transfer listing.
type TransferRecord struct {
	AccountName   string    `json:"account_name"`
	AccountNumber *string   `json:"account_number"`
	Currency      string    `json:"currency"`
	Amount        float64   `json:"amount"`
	Charge        float64   `json:"charge"`
	TransferType  string    `json:"transfer_type"`
	ChapaRef      string    `json:"chapa_reference"`
	BankCode      int       `json:"bank_code"`
	BankName      string    `json:"bank_name"`
	BankReference *string   `json:"bank_reference"`
	Status        string    `json:"status"`
	Reference     *string   `json:"reference"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type (
	// TransferResponse carries the queued transfer's reference as a bare
	// string in Data.
	TransferResponse       = Envelope[string]
	VerifyTransferResponse = Envelope[VerifyTransferData]
	BulkTransferResponse   = Envelope[BulkTransferData]
	TransfersResponse      = EnvelopeWithMeta[[]TransferRecord, ListMeta]
)

// Transfer queues a single payout to a bank account or wallet.
func (c *Client) Transfer(ctx context.Context, opts TransferOptions) (*TransferResponse, error) {
	return send[TransferResponse](ctx, c, http.MethodPost, "transfers", opts)
}

// VerifyTransfer looks up the outcome of a transfer by its reference.
func (c *Client) VerifyTransfer(ctx context.Context, reference string) (*VerifyTransferResponse, error) {
	return send[VerifyTransferResponse](ctx, c, http.MethodGet, fmt.Sprintf("transfers/verify/%s", reference), nil)
}

// BulkTransfer queues a batch of payouts in one request.
func (c *Client) BulkTransfer(ctx context.Context, opts BulkTransferOptions) (*BulkTransferResponse, error) {
	return send[BulkTransferResponse](ctx, c, http.MethodPost, "bulk-transfers", opts)
}

// VerifyBulkTransfer lists the individual transfers of one batch.
func (c *Client) VerifyBulkTransfer(ctx context.Context, batchID string) (*TransfersResponse, error) {
	return send[TransfersResponse](ctx, c, http.MethodGet, fmt.Sprintf("transfers?batch_id=%s", batchID), nil)
}

// GetTransfers lists the merchant's transfers, paginated.
func (c *Client) GetTransfers(ctx context.Context) (*TransfersResponse, error) {
	return send[TransfersResponse](ctx, c, http.MethodGet, "transfers", nil)
}
