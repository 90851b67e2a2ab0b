/*
Package scoring turns a transaction into a fraud verdict.

The scorer derives two engineered features, assembles the feature vector in
the exact column order the model was trained with, asks the classifier for the
probability of the fraud class and compares it against a fixed threshold.

Usage:

	scorer, err := scoring.NewScorer(model, scoring.Config{})
	if err != nil {
	    // the model exposes neither PredictProba nor Predict
	}

	result, err := scorer.Score(record)

Feature order:

	step, amount, oldbalanceOrg, newbalanceOrig, oldbalanceDest, newbalanceDest,
	balance_error, amount_log, type_PAYMENT, type_TRANSFER, type_CASH_OUT, type_DEBIT

The indicator columns are not in the order the request declares them. The order
is part of the trained model and changes only together with retraining.

Classifiers:

A model implementing ProbabilisticClassifier is always preferred. A model that
only implements LabelClassifier is accepted as a lower-fidelity fallback: its
hard label is used in place of a probability, so scores are either 0 or 100.
Set Config.RequireProbability to refuse such models.

Error Handling:

  - errors.ErrInvalidInput: the record failed validation; the classifier was not called
  - errors.ErrInference: the classifier failed or returned an unusable output

Both are terminal for the request.
*/
package scoring
