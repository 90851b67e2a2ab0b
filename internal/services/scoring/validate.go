package scoring

import (
	"fraudscore/internal/models"
	"fraudscore/internal/validation"
)

// Validate checks the domain constraints a record must meet before it may
// reach a classifier.
func Validate(rec models.TransactionRecord) error {
	v := validation.New()

	if v.Finite(models.FieldAmount, rec.Amount) {
		v.GreaterThan(models.FieldAmount, rec.Amount, -1)
	}
	v.Finite(models.FieldOldBalanceOrg, rec.OldBalanceOrg)
	v.Finite(models.FieldNewBalanceOrig, rec.NewBalanceOrig)
	v.Finite(models.FieldOldBalanceDest, rec.OldBalanceDest)
	v.Finite(models.FieldNewBalanceDest, rec.NewBalanceDest)

	binary := v.Binary(models.FieldTypeCashOut, float64(rec.IsCashOut))
	binary = v.Binary(models.FieldTypeDebit, float64(rec.IsDebit)) && binary
	binary = v.Binary(models.FieldTypePayment, float64(rec.IsPayment)) && binary
	binary = v.Binary(models.FieldTypeTransfer, float64(rec.IsTransfer)) && binary
	if binary {
		v.AtMostOne(FieldIndicators, rec.IsCashOut, rec.IsDebit, rec.IsPayment, rec.IsTransfer)
	}

	return v.Err()
}

// ValidateFeatures rejects vectors whose engineered features overflowed,
// keyed by the training-time column name.
func ValidateFeatures(fv FeatureVector) error {
	v := validation.New()
	for i, x := range fv {
		v.Finite(FeatureNames[i], x)
	}
	return v.Err()
}
