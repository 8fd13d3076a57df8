package chapa

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Bank is one entry from the supported-bank list.
type Bank struct {
	ID            int       `json:"id"`
	Slug          string    `json:"slug"`
	Swift         string    `json:"swift"`
	Name          string    `json:"name"`
	AcctLength    int       `json:"acct_length"`
	CountryID     int       `json:"country_id"`
	IsRTGS        *int      `json:"is_rtgs"`
	IsMobileMoney *int      `json:"is_mobilemoney"`
	IsActive      *int      `json:"is_active"`
	Active        *int      `json:"active"`
	Is24Hrs       *int      `json:"is_24hrs"`
	Currency      string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Balance is the available/ledger balance for one currency.
type Balance struct {
	Currency         string  `json:"currency"`
	AvailableBalance float64 `json:"available_balance"`
	LedgerBalance    float64 `json:"ledger_balance"`
}

// SwapOptions is the request body for a currency swap. The API enforces its
// own minimum and maximum amounts and swaps are irreversible; none of that
// is checked locally.
type SwapOptions struct {
	Amount float64 `json:"amount" validate:"required"`
	From   string  `json:"from" validate:"required"`
	To     string  `json:"to" validate:"required"`
}

// SwapData is the result of a completed currency swap.
type SwapData struct {
	Status          string    `json:"status"`
	RefID           string    `json:"ref_id"`
	FromCurrency    string    `json:"from_currency"`
	ToCurrency      string    `json:"to_currency"`
	Amount          float64   `json:"amount"`
	ExchangedAmount float64   `json:"exchanged_amount"`
	Charge          float64   `json:"charge"`
	Rate            float64   `json:"rate"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type (
	BanksResponse    = Envelope[[]Bank]
	BalancesResponse = Envelope[[]Balance]
	SwapResponse     = Envelope[SwapData]
)

// GetBanks retrieves the list of banks Chapa can transfer to.
func (c *Client) GetBanks(ctx context.Context) (*BanksResponse, error) {
	return send[BanksResponse](ctx, c, http.MethodGet, "banks", nil)
}

// GetBalances retrieves the merchant balance for every currency.
func (c *Client) GetBalances(ctx context.Context) (*BalancesResponse, error) {
	return send[BalancesResponse](ctx, c, http.MethodGet, "balances", nil)
}

// GetBalance retrieves the merchant balance for one currency code.
func (c *Client) GetBalance(ctx context.Context, currency string) (*BalancesResponse, error) {
	return send[BalancesResponse](ctx, c, http.MethodGet, fmt.Sprintf("balances/%s", currency), nil)
}

// SwapCurrencies exchanges an amount between two merchant balances.
func (c *Client) SwapCurrencies(ctx context.Context, opts SwapOptions) (*SwapResponse, error) {
	return send[SwapResponse](ctx, c, http.MethodPost, "swap", opts)
}
