package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hvacscan/internal"
	"hvacscan/internal/manuals"
	"hvacscan/internal/pipeline"
	"hvacscan/internal/taxonomy"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List known asset types with their contract codes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range taxonomy.KnownTypes() {
			fmt.Printf("%s\t%s\n", name, taxonomy.ResolveCode(name))
		}
	},
}

var (
	classifyRecord internal.EquipmentRecord
	classifyJSON   bool
	classifyLinks  bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Suggest an asset type for a nameplate reading",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		classifier := pipeline.NewClassifier(pipeline.WeightsFromConfig(cfg))
		result := classifier.Classify(classifyRecord)
		suggestions := classifier.SuggestWithExplanation(classifyRecord)

		var links []internal.ManualLink
		if classifyLinks {
			var err error
			links, err = manuals.Search(classifyRecord.Manufacturer, classifyRecord.Model)
			must(err)
		}

		if classifyJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			must(enc.Encode(map[string]any{
				"classification": result,
				"suggestions":    suggestions,
				"needsReview":    result.NeedsReview(classifier.Weights().ReviewThreshold),
				"manualLinks":    links,
			}))
			return
		}

		if result.Suggested == nil {
			fmt.Println("no suggestion")
		}
		for _, s := range suggestions {
			fmt.Printf("%-40s %5.2f  %s\n", s.Type, s.Confidence, s.Explanation)
		}
		if result.NeedsReview(classifier.Weights().ReviewThreshold) {
			fmt.Println("review recommended")
		}
		for _, l := range links {
			fmt.Printf("%s\n  %s\n", l.Title, l.URL)
		}
	},
}

func recordFlags(cmd *cobra.Command, r *internal.EquipmentRecord) {
	f := cmd.Flags()
	f.StringVar(&r.Manufacturer, "manufacturer", "", "manufacturer")
	f.StringVar(&r.Model, "model", "", "model number")
	f.StringVar(&r.SerialNumber, "serial", "", "serial number")
	f.StringVar(&r.Size, "size", "", "capacity, e.g. \"15 Ton\"")
	f.StringVar(&r.Notes, "notes", "", "free-text notes")
}

func init() {
	recordFlags(classifyCmd, &classifyRecord)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "print JSON")
	classifyCmd.Flags().BoolVar(&classifyLinks, "manuals", false, "include manual links")
}
