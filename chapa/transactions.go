package chapa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// InitializeOptions is the request body for creating a hosted checkout
// session. Amount is a string on the wire.
type InitializeOptions struct {
	FirstName     string          `json:"first_name,omitempty"`
	LastName      string          `json:"last_name,omitempty"`
	Email         string          `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber   string          `json:"phone_number,omitempty"`
	Currency      string          `json:"currency" validate:"required"`
	Amount        string          `json:"amount" validate:"required"`
	TxRef         string          `json:"tx_ref" validate:"required"`
	CallbackURL   string          `json:"callback_url,omitempty"`
	ReturnURL     string          `json:"return_url,omitempty"`
	Customization *Customization  `json:"customization,omitempty"`
	Subaccounts   []Subaccount    `json:"subaccounts,omitempty"`
	Meta          json.RawMessage `json:"meta,omitempty"`
}

// Customization controls how the hosted payment page is presented.
type Customization struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Logo        *string `json:"logo,omitempty"`
}

// SplitType selects how a subaccount split is computed.
type SplitType string

const (
	SplitTypePercentage SplitType = "percentage"
	SplitTypeFlat       SplitType = "flat"
)

// Subaccount describes a payment split destination.
type Subaccount struct {
	ID         string    `json:"id"`
	SplitType  SplitType `json:"split_type,omitempty"`
	SplitValue *float64  `json:"split_value,omitempty"`
}

// CheckoutURL is the hosted payment link returned by a successful
// initialization.
type CheckoutURL struct {
	CheckoutURL string `json:"checkout_url"`
}

// VerifyData is the detail record behind a transaction verification. Most
// fields are optional because the API omits them for some payment channels.
type VerifyData struct {
	FirstName     *string        `json:"first_name"`
	LastName      *string        `json:"last_name"`
	Email         *string        `json:"email"`
	Currency      *string        `json:"currency"`
	Amount        float64        `json:"amount"`
	Charge        *float64       `json:"charge"`
	Mode          *string        `json:"mode"`
	Method        *string        `json:"method"`
	Type          *string        `json:"type"`
	Status        *string        `json:"status"`
	Reference     *string        `json:"reference"`
	TxRef         *string        `json:"tx_ref"`
	Customization *Customization `json:"customization"`
	Meta          *string        `json:"meta"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// Customer is the payer attached to a listed transaction.
type Customer struct {
	ID        int     `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Mobile    *string `json:"mobile"`
}

// TransactionRecord is one entry from the transaction listing. Amount and
// charge arrive as decimal strings on this endpoint.
type TransactionRecord struct {
	Status        string    `json:"status"`
	RefID         string    `json:"ref_id"`
	Type          string    `json:"type"`
	CreatedAt     time.Time `json:"created_at"`
	Currency      string    `json:"currency"`
	Amount        string    `json:"amount"`
	Charge        string    `json:"charge"`
	TransID       *string   `json:"trans_id"`
	PaymentMethod string    `json:"payment_method"`
	Customer      Customer  `json:"customer"`
}

// TransactionPagination is the page block on the transaction listing. It is
// a different shape from the transfer listing's meta block.
type TransactionPagination struct {
	PerPage      int     `json:"per_page"`
	CurrentPage  int     `json:"current_page"`
	FirstPageURL string  `json:"first_page_url"`
	NextPageURL  *string `json:"next_page_url"`
	PrevPageURL  *string `json:"prev_page_url"`
}

// TransactionList is the data payload of the transaction listing.
type TransactionList struct {
	Transactions []TransactionRecord   `json:"transactions"`
	Pagination   TransactionPagination `json:"pagination"`
}

// TransactionEvent is one entry from a transaction's event log.
type TransactionEvent struct {
	Item      int       `json:"item"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type (
	InitializeResponse        = Envelope[CheckoutURL]
	VerifyResponse            = Envelope[VerifyData]
	TransactionsResponse      = Envelope[TransactionList]
	TransactionEventsResponse = Envelope[[]TransactionEvent]
)

// InitializeTransaction creates a hosted checkout session. A success
// envelope carries the checkout URL in Data.
func (c *Client) InitializeTransaction(ctx context.Context, opts InitializeOptions) (*InitializeResponse, error) {
	return send[InitializeResponse](ctx, c, http.MethodPost, "transaction/initialize", opts)
}

// VerifyTransaction looks up the outcome of a transaction by its reference.
func (c *Client) VerifyTransaction(ctx context.Context, txRef string) (*VerifyResponse, error) {
	return send[VerifyResponse](ctx, c, http.MethodGet, fmt.Sprintf("transaction/verify/%s", txRef), nil)
}

// GetTransactions lists the merchant's transactions, paginated.
func (c *Client) GetTransactions(ctx context.Context) (*TransactionsResponse, error) {
	return send[TransactionsResponse](ctx, c, http.MethodGet, "transactions", nil)
}

// GetTransactionEvents fetches the event timeline for one transaction.
func (c *Client) GetTransactionEvents(ctx context.Context, txRef string) (*TransactionEventsResponse, error) {
	return send[TransactionEventsResponse](ctx, c, http.MethodGet, fmt.Sprintf("transaction/events/%s", txRef), nil)
}
