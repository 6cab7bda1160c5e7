package repository

import (
	"errors"
	"testing"

	"vizinhanca-ativa/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func cancelledTransaction(codes ...string) error {
	reasons := make([]types.CancellationReason, 0, len(codes))
	for _, code := range codes {
		reasons = append(reasons, types.CancellationReason{Code: aws.String(code)})
	}
	return &types.TransactionCanceledException{CancellationReasons: reasons}
}

func TestMapConditionalErr(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if got := mapConditionalErr(nil, interfaces.ErrRecordExists); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})

	t.Run("lost condition maps to the sentinel", func(t *testing.T) {
		err := &types.ConditionalCheckFailedException{}
		if got := mapConditionalErr(err, interfaces.ErrRecordExists); !errors.Is(got, interfaces.ErrRecordExists) {
			t.Fatalf("expected ErrRecordExists, got %v", got)
		}
	})

	t.Run("unrelated errors pass through", func(t *testing.T) {
		err := errors.New("throttled")
		if got := mapConditionalErr(err, interfaces.ErrRecordExists); got != err {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}

func TestMapTransactErr(t *testing.T) {
	t.Run("put condition failure maps to the first sentinel", func(t *testing.T) {
		err := cancelledTransaction("ConditionalCheckFailed", "None")
		got := mapTransactErr(err, interfaces.ErrRecordExists, interfaces.ErrConditionalCheckFailed)
		if !errors.Is(got, interfaces.ErrRecordExists) {
			t.Fatalf("expected ErrRecordExists, got %v", got)
		}
	})

	t.Run("update condition failure maps to the second sentinel", func(t *testing.T) {
		err := cancelledTransaction("None", "ConditionalCheckFailed")
		got := mapTransactErr(err, interfaces.ErrRecordExists, interfaces.ErrConditionalCheckFailed)
		if !errors.Is(got, interfaces.ErrConditionalCheckFailed) {
			t.Fatalf("expected ErrConditionalCheckFailed, got %v", got)
		}
	})

	t.Run("unrelated cancellation passes through", func(t *testing.T) {
		err := cancelledTransaction("TransactionConflict", "None")
		got := mapTransactErr(err, interfaces.ErrRecordExists, interfaces.ErrConditionalCheckFailed)
		if !errors.Is(got, err) {
			t.Fatalf("expected passthrough, got %v", got)
		}
	})
}
