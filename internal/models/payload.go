package models

import (
	"encoding/json"
	"errors"
	"io"

	apperrors "fraudscore/internal/errors"
	"fraudscore/internal/validation"
)

// TransactionPayload is the wire form of a TransactionRecord. Pointer fields
// let missing values be told apart from zeros.
type TransactionPayload struct {
	Step           *float64 `json:"step"`
	Amount         *float64 `json:"amount"`
	OldBalanceOrg  *float64 `json:"oldbalanceOrg"`
	NewBalanceOrig *float64 `json:"newbalanceOrig"`
	OldBalanceDest *float64 `json:"oldbalanceDest"`
	NewBalanceDest *float64 `json:"newbalanceDest"`
	TypeCashOut    *float64 `json:"type_CASH_OUT"`
	TypeDebit      *float64 `json:"type_DEBIT"`
	TypePayment    *float64 `json:"type_PAYMENT"`
	TypeTransfer   *float64 `json:"type_TRANSFER"`
}

// Record checks that every field is present and integral where the schema
// requires an integer, and converts the payload to a TransactionRecord.
// Domain checks (finiteness, indicator values, amount range) belong to the scorer.
func (p TransactionPayload) Record() (TransactionRecord, error) {
	v := validation.New()

	var rec TransactionRecord
	if v.Present(FieldStep, p.Step) && v.Integer(FieldStep, *p.Step) {
		rec.Step = int64(*p.Step)
	}

	floats := []struct {
		name string
		src  *float64
		dst  *float64
	}{
		{FieldAmount, p.Amount, &rec.Amount},
		{FieldOldBalanceOrg, p.OldBalanceOrg, &rec.OldBalanceOrg},
		{FieldNewBalanceOrig, p.NewBalanceOrig, &rec.NewBalanceOrig},
		{FieldOldBalanceDest, p.OldBalanceDest, &rec.OldBalanceDest},
		{FieldNewBalanceDest, p.NewBalanceDest, &rec.NewBalanceDest},
	}
	for _, f := range floats {
		if v.Present(f.name, f.src) {
			*f.dst = *f.src
		}
	}

	indicators := []struct {
		name string
		src  *float64
		dst  *int
	}{
		{FieldTypeCashOut, p.TypeCashOut, &rec.IsCashOut},
		{FieldTypeDebit, p.TypeDebit, &rec.IsDebit},
		{FieldTypePayment, p.TypePayment, &rec.IsPayment},
		{FieldTypeTransfer, p.TypeTransfer, &rec.IsTransfer},
	}
	for _, f := range indicators {
		if v.Present(f.name, f.src) && v.Integer(f.name, *f.src) {
			*f.dst = int(*f.src)
		}
	}

	if err := v.Err(); err != nil {
		return TransactionRecord{}, err
	}
	return rec, nil
}

// DecodeTransaction reads one JSON transaction from r.
func DecodeTransaction(r io.Reader) (TransactionRecord, error) {
	var p TransactionPayload
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return TransactionRecord{}, DecodeError(err)
	}
	return p.Record()
}

// DecodeError converts a JSON decoding failure into an invalid-input error.
func DecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return apperrors.Invalid(map[string]string{typeErr.Field: "must be a number"})
	case errors.As(err, &typeErr):
		return apperrors.Invalid(map[string]string{"body": "must be a JSON object"})
	case errors.As(err, &syntaxErr), errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.Invalid(map[string]string{"body": "malformed JSON"})
	default:
		return apperrors.Invalid(map[string]string{"body": err.Error()})
	}
}
