package main

import (
	"context"
	"os"

	"github.com/chapa-et/chapa-go/chapa"
	"github.com/chapa-et/chapa-go/pkg/config"
	"github.com/chapa-et/chapa-go/pkg/logger"
	"github.com/chapa-et/chapa-go/pkg/txref"
	"github.com/joho/godotenv"
)

// chapa-demo runs a handful of read-only calls against the live API using
// the CHAPA_API_PUBLIC_KEY from the environment.
func main() {
	logg := logger.New(logger.Options{ServiceName: "chapa-demo"})
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.NewBuilder().Build()
	if err != nil {
		logg.Error(ctx, "failed to build config", err)
		os.Exit(1)
	}

	client, err := chapa.NewClientFromConfig(cfg, chapa.WithLogger(logg))
	if err != nil {
		logg.Error(ctx, "failed to build client", err)
		os.Exit(1)
	}

	banks, err := client.GetBanks(logg.WithOperation(ctx, "get_banks"))
	if err != nil {
		logg.Error(ctx, "get banks", err)
		os.Exit(1)
	}
	if banks.HasData() {
		for _, bank := range *banks.Data {
			logg.Info(logg.WithField(ctx, "bank", bank.Name), "supported bank")
		}
	} else {
		logg.Warn(logg.WithField(ctx, "message", banks.Message.String()), "bank list unavailable")
	}

	balances, err := client.GetBalances(logg.WithOperation(ctx, "get_balances"))
	if err != nil {
		logg.Error(ctx, "get balances", err)
		os.Exit(1)
	}
	if balances.HasData() {
		for _, balance := range *balances.Data {
			fields := map[string]any{
				"currency":  balance.Currency,
				"available": balance.AvailableBalance,
			}
			logg.Info(logg.WithFields(ctx, fields), "merchant balance")
		}
	} else {
		logg.Warn(logg.WithField(ctx, "message", balances.Message.String()), "balances unavailable")
	}

	ref := txref.New()
	verifyCtx := logg.WithOperation(logg.WithTxRef(ctx, ref), "verify_transaction")
	verify, err := client.VerifyTransaction(verifyCtx, ref)
	if err != nil {
		logg.Error(ctx, "verify transaction", err)
		os.Exit(1)
	}
	// A fresh reference is unknown to the API, so this shows the failure
	// envelope on a live round trip.
	logg.Info(logg.WithFields(ctx, map[string]any{
		"status":  verify.Status,
		"message": verify.Message.String(),
	}), "verification result")
}
