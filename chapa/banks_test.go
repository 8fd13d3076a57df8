package chapa

import (
	"context"
	"net/http"
	"testing"
)

func TestGetBanks(t *testing.T) {
	seq := newSequence(t,
		canned{http.StatusOK, `{
			"message": "Banks retrieved",
			"data": [
				{
					"id": 130,
					"slug": "abay_bank",
					"swift": "ABAYETAA",
					"name": "Abay Bank",
					"acct_length": 16,
					"country_id": 1,
					"is_mobilemoney": null,
					"is_active": 1,
					"is_rtgs": 1,
					"active": 1,
					"is_24hrs": null,
					"created_at": "2023-01-24T04:28:30.000000Z",
					"updated_at": "2024-08-03T08:10:24.000000Z",
					"currency": "ETB"
				}
			]
		}`},
		canned{http.StatusOK, `{"message":"Invalid API Key","status":"failed","data":null}`},
	)
	client := newTestClient(t, seq)

	success, err := client.GetBanks(context.Background())
	if err != nil {
		t.Fatalf("GetBanks: %v", err)
	}
	if success.Message.IsNull() {
		t.Fatal("expected message")
	}
	// No status field on this fixture, so the default applies.
	if success.Status != StatusUnspecified {
		t.Fatalf("expected %q status, got %q", StatusUnspecified, success.Status)
	}
	if !success.HasData() {
		t.Fatal("expected bank list")
	}
	banks := *success.Data
	if len(banks) != 1 {
		t.Fatalf("expected 1 bank, got %d", len(banks))
	}
	if banks[0].ID != 130 || banks[0].Name != "Abay Bank" || banks[0].Currency != "ETB" {
		t.Fatalf("unexpected bank %+v", banks[0])
	}
	if banks[0].IsMobileMoney != nil {
		t.Fatalf("expected null is_mobilemoney, got %v", *banks[0].IsMobileMoney)
	}
	if banks[0].IsActive == nil || *banks[0].IsActive != 1 {
		t.Fatal("expected is_active 1")
	}

	failure, err := client.GetBanks(context.Background())
	if err != nil {
		t.Fatalf("GetBanks failure round trip: %v", err)
	}
	if failure.Message.IsNull() {
		t.Fatal("expected message")
	}
	if failure.Status != StatusFailed {
		t.Fatalf("expected failed status, got %q", failure.Status)
	}
	if failure.HasData() {
		t.Fatal("failure body should carry no data")
	}

	seq.assertExhausted()
}

func TestGetBalances(t *testing.T) {
	seq := newSequence(t,
		canned{http.StatusOK, `{
			"status": "success",
			"message": "Balance fetched successfully",
			"data": [
				{"currency": "ETB", "available_balance": 87416.03, "ledger_balance": 0},
				{"currency": "USD", "available_balance": 5.97, "ledger_balance": 0}
			]
		}`},
		canned{http.StatusBadRequest, `{"message":"Invalid API Key","status":"failed","data":null}`},
	)
	client := newTestClient(t, seq)

	success, err := client.GetBalances(context.Background())
	if err != nil {
		t.Fatalf("GetBalances: %v", err)
	}
	if success.Status != StatusSuccess || !success.HasData() {
		t.Fatalf("unexpected success envelope %+v", success)
	}
	balances := *success.Data
	if len(balances) != 2 {
		t.Fatalf("expected 2 balances, got %d", len(balances))
	}
	if balances[0].Currency != "ETB" || balances[0].AvailableBalance != 87416.03 {
		t.Fatalf("unexpected balance %+v", balances[0])
	}

	// A 400 body decodes into the same envelope instead of failing the call.
	failure, err := client.GetBalances(context.Background())
	if err != nil {
		t.Fatalf("GetBalances failure round trip: %v", err)
	}
	if failure.Status != StatusFailed || failure.HasData() {
		t.Fatalf("unexpected failure envelope %+v", failure)
	}

	seq.assertExhausted()
}

func TestGetBalanceByCurrency(t *testing.T) {
	var gotPath string
	seq := newSequence(t,
		canned{http.StatusOK, `{
			"status": "success",
			"message": "Balance fetched successfully",
			"data": [{"currency": "ETB", "available_balance": 87416.03, "ledger_balance": 0}]
		}`},
	)
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		seq.ServeHTTP(w, r)
	}))

	resp, err := client.GetBalance(context.Background(), "ETB")
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}
	if gotPath != "/v1/balances/ETB" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if !resp.HasData() || len(*resp.Data) != 1 {
		t.Fatalf("unexpected envelope %+v", resp)
	}

	seq.assertExhausted()
}

func TestSwapCurrencies(t *testing.T) {
	seq := newSequence(t,
		canned{http.StatusOK, `{
			"message": "Swap has been made successfully.",
			"status": "success",
			"data": {
				"status": "Success",
				"ref_id": "SWPfSqc5BiwcC",
				"from_currency": "USD",
				"to_currency": "ETB",
				"amount": 1,
				"exchanged_amount": 127,
				"charge": 0,
				"rate": 127,
				"created_at": "2025-04-23T08:50:46.000000Z",
				"updated_at": "2025-04-23T08:50:46.000000Z"
			}
		}`},
		canned{http.StatusBadRequest, `{"message":"Amount must be at least 1","status":"failed","data":null}`},
	)
	client := newTestClient(t, seq)

	opts := SwapOptions{Amount: 100, From: "USD", To: "ETB"}

	success, err := client.SwapCurrencies(context.Background(), opts)
	if err != nil {
		t.Fatalf("SwapCurrencies: %v", err)
	}
	if success.Status != StatusSuccess || !success.HasData() {
		t.Fatalf("unexpected success envelope %+v", success)
	}
	if success.Data.ExchangedAmount != 127 || success.Data.Rate != 127 {
		t.Fatalf("unexpected swap data %+v", *success.Data)
	}
	if success.Data.RefID != "SWPfSqc5BiwcC" {
		t.Fatalf("unexpected ref id %q", success.Data.RefID)
	}

	failure, err := client.SwapCurrencies(context.Background(), opts)
	if err != nil {
		t.Fatalf("SwapCurrencies failure round trip: %v", err)
	}
	if failure.Status != StatusFailed || failure.HasData() {
		t.Fatalf("unexpected failure envelope %+v", failure)
	}

	seq.assertExhausted()
}
