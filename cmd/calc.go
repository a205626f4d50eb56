package main

import (
	"drills/internal/config"
	"drills/internal/evaluator"
	"drills/pkg/domain"
	"drills/pkg/drill"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func parseFloatArg(name, raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", name, err)
	}

	return v, nil
}

// halveCommand constructs the 'halve' subcommand printing the halved value
// and the number of halvings.
func halveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "halve <value>",
		Short: "Halves a value until it is at or below ten",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := parseFloatArg("value", args[0])
			if err != nil {
				return err
			}

			res, steps := drill.Halve(value)
			fmt.Fprintf(cmd.OutOrStdout(), "%v (%d halvings)\n", res, steps)

			return nil
		},
	}
}

// exponentiateCommand constructs the 'exponentiate' subcommand computing
// base^(exponent^repeat), optionally exactly.
func exponentiateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exponentiate <base> <exponent>",
		Short: "Computes base^(exponent^repeat)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := domain.EvaluationInput{Operation: domain.OperationExponentiation}

			var err error
			if input.Base, err = parseFloatArg("base", args[0]); err != nil {
				return err
			}
			if input.Exponent, err = parseFloatArg("exponent", args[1]); err != nil {
				return err
			}
			input.Repeat, _ = cmd.Flags().GetUint("repeat")
			input.Exact, _ = cmd.Flags().GetBool("exact")

			res, err := evaluator.Compute(input, cfg.Evaluator.MaxExactResultBits)
			if err != nil {
				return err //nolint: wrapcheck
			}

			out := cmd.OutOrStdout()
			if !res.ValueOverflow {
				fmt.Fprintln(out, res.Value)
			}
			if res.Exact != "" {
				fmt.Fprintln(out, res.Exact)
			}

			return nil
		},
	}

	cmd.Flags().Uint("repeat", 1, "How many times the result is re-raised to the exponent, giving base^(exponent^repeat)")
	cmd.Flags().Bool("exact", false, "Also print the exact integer result")

	return cmd
}

// printAnswers writes the answer key grouped by topic.
func printAnswers(w io.Writer, answers []drill.Answer) {
	topic := color.New(color.FgCyan, color.Bold)
	question := color.New(color.FgWhite)
	value := color.New(color.FgGreen)

	var current string
	for _, a := range answers {
		if a.Topic != current {
			current = a.Topic
			topic.Fprintln(w, current)
		}
		question.Fprintf(w, "  %s: ", a.Question)
		value.Fprintln(w, a.Value)
	}
}

// answersCommand constructs the 'answers' subcommand printing the answer key.
func answersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "answers",
		Short: "Prints the answer key of every drill",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
			printAnswers(cmd.OutOrStdout(), drill.AnswerKey())
		},
	}

	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}
