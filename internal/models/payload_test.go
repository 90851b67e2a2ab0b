package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "fraudscore/internal/errors"
)

const validTransaction = `{
	"step": 7, "amount": 181.0, "oldbalanceOrg": 181.0, "newbalanceOrig": 0.0,
	"oldbalanceDest": 21182.0, "newbalanceDest": 0.0,
	"type_CASH_OUT": 1, "type_DEBIT": 0, "type_PAYMENT": 0, "type_TRANSFER": 0
}`

func TestDecodeTransaction_Valid(t *testing.T) {
	rec, err := DecodeTransaction(strings.NewReader(validTransaction))
	require.NoError(t, err)

	assert.Equal(t, TransactionRecord{
		Step:           7,
		Amount:         181,
		OldBalanceOrg:  181,
		OldBalanceDest: 21182,
		IsCashOut:      1,
	}, rec)
}

func TestDecodeTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		fields map[string]string
	}{
		{
			name:   "empty body",
			input:  "",
			fields: map[string]string{"body": "malformed JSON"},
		},
		{
			name:   "truncated",
			input:  `{"step": 7`,
			fields: map[string]string{"body": "malformed JSON"},
		},
		{
			name:   "array instead of object",
			input:  `[1, 2, 3]`,
			fields: map[string]string{"body": "must be a JSON object"},
		},
		{
			name:   "string amount",
			input:  strings.Replace(validTransaction, `"amount": 181.0`, `"amount": "181"`, 1),
			fields: map[string]string{FieldAmount: "must be a number"},
		},
		{
			name:  "missing fields",
			input: `{"step": 7, "amount": 181.0, "oldbalanceOrg": 181.0, "newbalanceOrig": 0.0, "oldbalanceDest": 0, "newbalanceDest": 0}`,
			fields: map[string]string{
				FieldTypeCashOut:  "field required",
				FieldTypeDebit:    "field required",
				FieldTypePayment:  "field required",
				FieldTypeTransfer: "field required",
			},
		},
		{
			name:   "fractional indicator",
			input:  strings.Replace(validTransaction, `"type_CASH_OUT": 1`, `"type_CASH_OUT": 0.5`, 1),
			fields: map[string]string{FieldTypeCashOut: "must be an integer"},
		},
		{
			name:   "step beyond exact integer range",
			input:  strings.Replace(validTransaction, `"step": 7`, `"step": 1e300`, 1),
			fields: map[string]string{FieldStep: "must be an integer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeTransaction(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.fields, apperrors.FieldsOf(err))
		})
	}
}

func TestRecord_IndicatorRangeLeftToScorer(t *testing.T) {
	p := TransactionPayload{}
	one, two := 1.0, 2.0
	p.Step, p.Amount, p.OldBalanceOrg, p.NewBalanceOrig = &one, &one, &one, &one
	p.OldBalanceDest, p.NewBalanceDest = &one, &one
	p.TypeCashOut, p.TypeDebit, p.TypePayment, p.TypeTransfer = &two, &one, &one, &one

	rec, err := p.Record()
	require.NoError(t, err)
	assert.Equal(t, 2, rec.IsCashOut)
}
