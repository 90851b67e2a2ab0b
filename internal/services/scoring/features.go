package scoring

import (
	"math"

	"fraudscore/internal/models"
)

// FeatureVector is the model input for one transaction.
type FeatureVector [FeatureCount]float64

// FeatureNames lists the training-time column names in vector order.
var FeatureNames = [FeatureCount]string{
	models.FieldStep,
	models.FieldAmount,
	models.FieldOldBalanceOrg,
	models.FieldNewBalanceOrig,
	models.FieldOldBalanceDest,
	models.FieldNewBalanceDest,
	"balance_error",
	"amount_log",
	models.FieldTypePayment,
	models.FieldTypeTransfer,
	models.FieldTypeCashOut,
	models.FieldTypeDebit,
}

// AmountLog returns log(1 + amount). It is NaN for amount <= -1, which
// Validate rejects before this is reached.
func AmountLog(amount float64) float64 {
	return math.Log1p(amount)
}

// BalanceError is the signed gap between the origin's expected and actual
// post-transaction balance.
func BalanceError(oldBalanceOrg, amount, newBalanceOrig float64) float64 {
	return oldBalanceOrg - amount - newBalanceOrig
}

// BuildFeatureVector assembles the model input from a validated record.
func BuildFeatureVector(rec models.TransactionRecord) FeatureVector {
	return FeatureVector{
		float64(rec.Step),
		rec.Amount,
		rec.OldBalanceOrg,
		rec.NewBalanceOrig,
		rec.OldBalanceDest,
		rec.NewBalanceDest,
		BalanceError(rec.OldBalanceOrg, rec.Amount, rec.NewBalanceOrig),
		AmountLog(rec.Amount),
		float64(rec.IsPayment),
		float64(rec.IsTransfer),
		float64(rec.IsCashOut),
		float64(rec.IsDebit),
	}
}
