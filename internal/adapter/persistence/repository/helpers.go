package repository

import (
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// decimalFromString tolerates missing or malformed stored values by falling
// back to zero; aggregates must never fail over partial data.
func decimalFromString(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// mapConditionalErr normalizes a lost ConditionExpression on a single-item
// write into the given sentinel.
func mapConditionalErr(err, sentinel error) error {
	if err == nil {
		return nil
	}
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return sentinel
	}
	return err
}

// mapTransactErr resolves a cancelled transaction to the sentinel of the
// first item whose condition failed. Sentinels are positional, one per
// transaction item, so callers can tell a duplicate put apart from a lost
// state condition on the companion update.
func mapTransactErr(err error, sentinels ...error) error {
	if err == nil {
		return nil
	}
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return err
	}
	for i, reason := range tce.CancellationReasons {
		if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" && i < len(sentinels) {
			return sentinels[i]
		}
	}
	return err
}
