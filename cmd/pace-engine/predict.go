// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pace-engine/internal/form"
	"github.com/pdiddy/pace-engine/internal/predictor"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate a 5K race time",
	Long: `Predict estimates a 5K finishing time from VO2 max, gender, and age.

For a single runner pass --vo2max, --gender, and --age. For a squad pass
--batch with a YAML file of runners; --out writes the annotated batch
(results and summary) back to disk.`,
	RunE: runPredict,
}

func init() {
	predictCmd.Flags().Float64("vo2max", 0, "runner's VO2 max in ml/kg/min")
	predictCmd.Flags().String("gender", "", "runner's gender (male or female)")
	predictCmd.Flags().Int("age", 0, "runner's age in years")
	predictCmd.Flags().String("batch", "", "YAML batch file of runners")
	predictCmd.Flags().String("out", "", "write batch results to this YAML file")
	predictCmd.Flags().Bool("json", false, "output the result as JSON")

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, args []string) error {
	batchPath, _ := cmd.Flags().GetString("batch")
	if batchPath != "" {
		return runPredictBatch(cmd, batchPath)
	}
	return runPredictSingle(cmd)
}

func runPredictSingle(cmd *cobra.Command) error {
	// Flag values funnel through the same validation as the web form so
	// both adapters reject identical inputs identically.
	vo2, _ := cmd.Flags().GetFloat64("vo2max")
	gender, _ := cmd.Flags().GetString("gender")
	age, _ := cmd.Flags().GetInt("age")

	if !cmd.Flags().Changed("vo2max") || gender == "" || !cmd.Flags().Changed("age") {
		return fmt.Errorf("provide --vo2max, --gender, and --age (or --batch for a batch file)")
	}

	in, err := form.ParseInput(
		strconv.FormatFloat(vo2, 'f', -1, 64),
		gender,
		strconv.Itoa(age),
	)
	if err != nil {
		return err
	}

	result, err := predictor.Predict(in)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Printf("Predicted 5K Time: %s\n", result.Display)
	return nil
}

func runPredictBatch(cmd *cobra.Command, path string) error {
	bf, err := predictor.ReadBatchFile(path)
	if err != nil {
		return err
	}
	if len(bf.Runners) == 0 {
		return fmt.Errorf("batch file %s contains no runners", path)
	}

	predictor.RunBatch(bf)

	fmt.Fprintf(os.Stdout, "%-20s  %-10s  %-8s  %-5s  %s\n", "Name", "VO2 max", "Gender", "Age", "Predicted 5K")
	for _, entry := range bf.Runners {
		name := entry.Name
		if name == "" {
			name = "-"
		}
		outcome := entry.Error
		if entry.Result != nil {
			outcome = entry.Result.Display
		}
		fmt.Fprintf(os.Stdout, "%-20s  %-10.1f  %-8s  %-5d  %s\n", name, entry.VO2Max, entry.Gender, entry.Age, outcome)
	}
	fmt.Fprintf(os.Stdout, "\n%d runner(s), %d failed\n", bf.Summary.Total, bf.Summary.Failed)

	if outPath, _ := cmd.Flags().GetString("out"); outPath != "" {
		if err := predictor.WriteBatchFile(outPath, bf); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Wrote %s\n", outPath)
	}

	if bf.Summary.Failed > 0 {
		return fmt.Errorf("%d runner(s) failed prediction", bf.Summary.Failed)
	}
	return nil
}
