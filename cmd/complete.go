package cmd

import (
	"github.com/etnz/inventory/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var formats = predict.Set{"legacy", "jsonl"}

// Completion describes the inv command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"config":      predict.Files("*.yaml"),
			"backup-file": predict.Files("*"),
			"format":      formats,
			"strict":      predict.Nothing,
			"v":           predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"shell":  {Flags: map[string]complete.Predictor{"restore": predict.Nothing}},
			"list":   {},
			"find":   {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"bill":   {Flags: map[string]complete.Predictor{"d": predict.Something}},
			"total":  {},
			"query":  {Args: predict.Something},
			"fmt":    {Flags: map[string]complete.Predictor{"to": formats}},
			"topic":  {Args: predict.Set(append(topics, "readme", "*"))},
			"assist": {},
		},
	}
}
