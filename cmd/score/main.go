// Command score scores one JSON transaction offline with a model artifact.
//
//	score -model fraud_model.json transaction.json
//	cat transaction.json | score
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"fraudscore/internal/classifier"
	"fraudscore/internal/config"
	"fraudscore/internal/models"
	"fraudscore/internal/services/scoring"
)

func main() {
	config.LoadEnv()
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("score", flag.ContinueOnError)
	fs.SetOutput(stderr)
	modelPath := fs.String("model", config.GetEnv("MODEL_PATH", "fraud_model.json"), "Path to the model artifact")
	threshold := fs.Float64("threshold", config.GetFloatEnv("FRAUD_THRESHOLD", scoring.DefaultThreshold), "Fraud probability threshold")
	requireProba := fs.Bool("require-probability", config.GetBoolEnv("REQUIRE_PROBABILITY", false), "Refuse models without probability output")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	input := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Error opening transaction file: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	model, err := classifier.LoadFile(*modelPath, scoring.FeatureNames[:])
	if err != nil {
		fmt.Fprintf(stderr, "Error loading model: %v\n", err)
		return 1
	}
	scorer, err := scoring.NewScorer(model, scoring.Config{Threshold: *threshold, RequireProbability: *requireProba})
	if err != nil {
		fmt.Fprintf(stderr, "Error building scorer: %v\n", err)
		return 1
	}
	if scorer.Fidelity() == models.FidelityLabel {
		fmt.Fprintln(stderr, "Warning: model has no probability output, score is a hard label")
	}

	rec, err := models.DecodeTransaction(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading transaction: %v\n", err)
		return 1
	}
	result, err := scorer.Score(rec)
	if err != nil {
		fmt.Fprintf(stderr, "Error scoring transaction: %v\n", err)
		return 1
	}

	if err := json.NewEncoder(stdout).Encode(result); err != nil {
		fmt.Fprintf(stderr, "Error writing result: %v\n", err)
		return 1
	}
	return 0
}
