package chapa

import (
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/chapa-et/chapa-go/pkg/errors"
)

func TestValidateReportsJSONFieldNames(t *testing.T) {
	err := Validate(InitializeOptions{Email: "not-an-email"})
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	details, ok := pkgerrors.As(err).Details().(map[string]string)
	require.True(t, ok, "expected detail map")
	require.Equal(t, "is required", details["currency"])
	require.Equal(t, "is required", details["amount"])
	require.Equal(t, "is required", details["tx_ref"])
	require.Equal(t, "must be a valid email", details["email"])
}

func TestValidateAcceptsCompleteOptions(t *testing.T) {
	err := Validate(TransferOptions{
		AccountNumber: "32423423",
		Amount:        "1",
		BankCode:      656,
	})
	require.NoError(t, err)
}

func TestValidateDivesIntoBulkEntries(t *testing.T) {
	err := Validate(BulkTransferOptions{
		Title:    "Salary",
		Currency: "ETB",
		BulkData: []BulkEntry{
			{AccountNumber: "09xxxxxxxx", Amount: "1", BankCode: 128},
			{AccountNumber: "09xxxxxxxx", BankCode: 128},
		},
	})
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation))

	details, ok := pkgerrors.As(err).Details().(map[string]string)
	require.True(t, ok, "expected detail map")
	require.Equal(t, "is required", details["amount"])

	err = Validate(BulkTransferOptions{Title: "Salary", Currency: "ETB"})
	require.True(t, pkgerrors.Is(err, pkgerrors.CodeValidation), "empty bulk_data should fail")
}
