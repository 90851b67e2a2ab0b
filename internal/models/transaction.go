package models

// Source-schema field names, as used on the wire and in training.
const (
	FieldStep           = "step"
	FieldAmount         = "amount"
	FieldOldBalanceOrg  = "oldbalanceOrg"
	FieldNewBalanceOrig = "newbalanceOrig"
	FieldOldBalanceDest = "oldbalanceDest"
	FieldNewBalanceDest = "newbalanceDest"
	FieldTypeCashOut    = "type_CASH_OUT"
	FieldTypeDebit      = "type_DEBIT"
	FieldTypePayment    = "type_PAYMENT"
	FieldTypeTransfer   = "type_TRANSFER"
)

// TransactionRecord is a single transaction to be scored.
// Indicator fields are one-hot encoded transaction types; all zero means the
// baseline type that was dropped from the encoding at training time.
type TransactionRecord struct {
	Step           int64   `json:"step"`
	Amount         float64 `json:"amount"`
	OldBalanceOrg  float64 `json:"oldbalanceOrg"`
	NewBalanceOrig float64 `json:"newbalanceOrig"`
	OldBalanceDest float64 `json:"oldbalanceDest"`
	NewBalanceDest float64 `json:"newbalanceDest"`
	IsCashOut      int     `json:"type_CASH_OUT"`
	IsDebit        int     `json:"type_DEBIT"`
	IsPayment      int     `json:"type_PAYMENT"`
	IsTransfer     int     `json:"type_TRANSFER"`
}
