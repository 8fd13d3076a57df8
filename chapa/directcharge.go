package chapa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ChargeType names the mobile-money or wallet channel for a direct charge.
// It is an open set: any string the API accepts is a valid value, the
// constants only cover the documented channels.
type ChargeType string

const (
	ChargeTelebirr    ChargeType = "telebirr"
	ChargeMPesa       ChargeType = "mpesa"
	ChargeAmole       ChargeType = "amole"
	ChargeCBEBirr     ChargeType = "cbebirr"
	ChargeCoopayEbirr ChargeType = "ebirr"
	ChargeAwashBirr   ChargeType = "awashbirr"
)

// DirectChargeOptions is the request body for charging a customer directly
// through a named channel, without a hosted checkout page.
type DirectChargeOptions struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty" validate:"omitempty,email"`
	Mobile    string `json:"mobile" validate:"required"`
	Currency  string `json:"currency" validate:"required"`
	Amount    string `json:"amount" validate:"required"`
	TxRef     string `json:"tx_ref" validate:"required"`
}

// DirectChargeData is the payload of an initiated direct charge.
type DirectChargeData struct {
	AuthType  string           `json:"auth_type"`
	RequestID string           `json:"requestID"`
	Meta      DirectChargeMeta `json:"meta"`
	Mode      string           `json:"mode"`
}

// DirectChargeMeta carries the channel-level outcome of the initiation.
type DirectChargeMeta struct {
	Message       string `json:"message"`
	Status        string `json:"status"`
	RefID         string `json:"ref_id"`
	PaymentStatus string `json:"payment_status"`
}

// VerifyDirectChargeOptions is the request body for authorizing/validating a
// pending direct charge.
type VerifyDirectChargeOptions struct {
	Reference string `json:"reference" validate:"required"`
	Client    string `json:"client" validate:"required"`
}

// DirectChargeResponse wraps DirectChargeData in the standard envelope.
type DirectChargeResponse = Envelope[DirectChargeData]

// VerifyDirectChargeResponse models the validate endpoint's irregular body:
// successes arrive as {message, trx_ref, processor_id} with no status or
// data at all, failures as the usual {message, status, data: null}.
type VerifyDirectChargeResponse struct {
	Message     Message         `json:"message"`
	Status      string          `json:"status"`
	TrxRef      *string         `json:"trx_ref"`
	ProcessorID *string         `json:"processor_id"`
	Data        json.RawMessage `json:"data"`
}

func (r *VerifyDirectChargeResponse) UnmarshalJSON(b []byte) error {
	type plain VerifyDirectChargeResponse
	p := plain{Status: StatusUnspecified}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*r = VerifyDirectChargeResponse(p)
	return nil
}

// HasData reports whether the validate endpoint returned a non-null data
// payload. Successful validations usually carry trx_ref instead.
func (r *VerifyDirectChargeResponse) HasData() bool {
	return r != nil && len(r.Data) > 0 && string(r.Data) != "null"
}

// DirectCharge initiates a charge through the given channel. The channel
// rides in the query string, not the body.
func (c *Client) DirectCharge(ctx context.Context, chargeType ChargeType, opts DirectChargeOptions) (*DirectChargeResponse, error) {
	return send[DirectChargeResponse](ctx, c, http.MethodPost, fmt.Sprintf("charges?type=%s", chargeType), opts)
}

// VerifyDirectCharge authorizes a pending direct charge.
func (c *Client) VerifyDirectCharge(ctx context.Context, chargeType ChargeType, opts VerifyDirectChargeOptions) (*VerifyDirectChargeResponse, error) {
	return send[VerifyDirectChargeResponse](ctx, c, http.MethodPost, fmt.Sprintf("validate?type=%s", chargeType), opts)
}
