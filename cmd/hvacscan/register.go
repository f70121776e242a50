package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hvacscan/internal"
	"hvacscan/internal/pipeline"
)

var (
	projectCustomer string
	projectLocation string
)

var projectCreateCmd = &cobra.Command{
	Use:   "project:create",
	Short: "Create a project register",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if strings.TrimSpace(projectCustomer) == "" {
			must(errors.New("--customer is required"))
		}
		db := openDB()
		defer db.Close()

		p, err := db.CreateProject(projectCustomer, projectLocation)
		must(err)
		fmt.Printf("project created id=%s customer=%q location=%q\n", p.ID, p.Customer, p.Location)
	},
}

var (
	projectID  string
	addRecord  internal.EquipmentRecord
	addForce   bool
	listAsJSON bool
)

var registerAddCmd = &cobra.Command{
	Use:   "register:add",
	Short: "Classify, duplicate-check and append one record",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		db := openDB()
		defer db.Close()

		res, err := registerService(db).Intake(projectID, addRecord, addForce)
		if errors.Is(err, pipeline.ErrNotExportable) && res.Classification != nil {
			for _, alt := range res.Classification.Alternatives {
				fmt.Printf("candidate %s %.2f\n", alt.Type, alt.Confidence)
			}
		}
		must(err)

		for _, w := range res.Warnings {
			fmt.Printf("warning: %s\n", w)
		}
		if res.NeedsReview {
			fmt.Printf("review recommended: asset type %q\n", res.Record.AssetType)
		}
		if !res.Appended {
			fmt.Printf("not added: %s (matches position %d); use --force to add anyway\n",
				res.Duplicate.Kind.Description(), res.Duplicate.Index)
			os.Exit(2)
		}
		fmt.Printf("added position=%d assetType=%q\n", res.Entry.Position, res.Record.AssetType)
	},
}

var registerListCmd = &cobra.Command{
	Use:   "register:list",
	Short: "Print a project's register",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		db := openDB()
		defer db.Close()

		p, err := db.MustProject(projectID)
		must(err)
		entries, err := db.ListEquipment(projectID)
		must(err)
		exports, err := db.CountRuns(projectID, "export")
		must(err)

		if listAsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			must(enc.Encode(entries))
			return
		}
		for _, e := range entries {
			r := e.Record
			fmt.Printf("%3d  %-28s %-16s %-16s %-12s qty=%d\n", e.Position, r.EffectiveAssetType(), r.Manufacturer, r.Model, r.SerialNumber, r.Quantity())
		}
		fmt.Printf("%s / %s: %d records, %d exports\n", p.Customer, p.Location, len(entries), exports)
	},
}

func requireProject() {
	if strings.TrimSpace(projectID) == "" {
		must(errors.New("--project is required"))
	}
}

func init() {
	projectCreateCmd.Flags().StringVar(&projectCustomer, "customer", "", "customer name")
	projectCreateCmd.Flags().StringVar(&projectLocation, "location", "", "site or building")

	for _, c := range []*cobra.Command{registerAddCmd, registerListCmd, exportXLSXCmd, exportTSVCmd, exportListCmd, importXLSXCmd} {
		c.Flags().StringVar(&projectID, "project", "", "project id")
	}

	recordFlags(registerAddCmd, &addRecord)
	f := registerAddCmd.Flags()
	f.IntVar(&addRecord.Qty, "qty", 1, "quantity")
	f.StringVar(&addRecord.AssetType, "asset-type", "", "asset type (classified when empty)")
	f.StringVar(&addRecord.CustomAssetType, "custom-type", "", "free-text type used with --asset-type=Other")
	f.StringVar(&addRecord.MfgYear, "year", "", "manufacture year")
	f.StringVar(&addRecord.Location, "location", "", "where the unit is installed")
	f.StringVar(&addRecord.FilterSize, "filter-size", "", "filter size")
	f.StringVar(&addRecord.FilterQuantity, "filter-qty", "", "filters per unit")
	f.StringVar(&addRecord.FilterMerv, "merv", "", "filter MERV rating")
	f.StringVar(&addRecord.Voltage, "voltage", "", "voltage")
	f.StringVar(&addRecord.Refrigerant, "refrigerant", "", "refrigerant")
	f.BoolVar(&addForce, "force", false, "add even when a duplicate exists")

	registerListCmd.Flags().BoolVar(&listAsJSON, "json", false, "print JSON")
}
