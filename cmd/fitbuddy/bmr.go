package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"fitbuddy/internal/estimator"
	"fitbuddy/internal/model"

	"github.com/spf13/cobra"
)

func newBMRCmd() *cobra.Command {
	var (
		weight   string
		height   string
		age      string
		gender   string
		activity string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "bmr",
		Short: "Estimate BMR, maintenance calories and goal targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			profile, ok := estimator.ParseProfile(weight, height, age, gender, activity)
			if !ok {
				fmt.Fprintln(out, estimator.Prompt)
				return nil
			}
			est, ok := estimator.Compute(profile)
			if !ok {
				fmt.Fprintln(out, estimator.Prompt)
				return nil
			}

			if asJSON {
				b, err := json.MarshalIndent(est, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal estimate json: %w", err)
				}
				fmt.Fprintln(out, string(b))
				return nil
			}

			printEstimate(out, profile.ActivityLevel, est)
			return nil
		},
	}

	cmd.Flags().StringVar(&weight, "weight", "", "Body weight in kg")
	cmd.Flags().StringVar(&height, "height", "", "Height in cm")
	cmd.Flags().StringVar(&age, "age", "", "Age in years")
	cmd.Flags().StringVar(&gender, "gender", string(model.GenderMale), "Gender (male or female)")
	cmd.Flags().StringVar(&activity, "activity", estimator.DefaultActivityLevel().ID, "Activity level id (see 'bmr levels')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the estimate as JSON")

	cmd.AddCommand(&cobra.Command{
		Use:   "levels",
		Short: "List activity levels",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLABEL\tMULTIPLIER\tDESCRIPTION")
			for _, level := range estimator.ActivityLevels() {
				fmt.Fprintf(tw, "%s\t%s\t%g\t%s\n", level.ID, level.Label, level.Multiplier, level.Description)
			}
			tw.Flush()
		},
	})

	return cmd
}

func printEstimate(w io.Writer, level model.ActivityLevel, est model.Estimate) {
	fmt.Fprintf(w, "BMR: %d kcal/day\n", estimator.Round(est.BMR))
	fmt.Fprintf(w, "Maintenance (%s): %d kcal/day\n", level.Label, estimator.Round(est.Maintenance))
	for _, band := range []model.GoalBand{est.Goals.FatLoss, est.Goals.Maintenance, est.Goals.MuscleGain} {
		fmt.Fprintf(w, "%s: %d kcal/day\n", band.Label, estimator.Round(band.Value))
	}
}
