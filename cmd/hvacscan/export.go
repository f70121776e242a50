package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hvacscan/internal/pipeline"
)

var (
	exportDir       string
	exportNoHeaders bool
	listOut         string
	importFile      string
	importForce     bool
)

var exportXLSXCmd = &cobra.Command{
	Use:   "export:xlsx",
	Short: "Write the Master PMA Estimate workbook for a project",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		db := openDB()
		defer db.Close()

		path, err := registerService(db).ExportProjectToFile(projectID, exportDir)
		must(err)
		fmt.Printf("exported to %s\n", path)
	},
}

var exportTSVCmd = &cobra.Command{
	Use:   "export:tsv",
	Short: "Print Master PMA rows as tab-separated text",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		db := openDB()
		defer db.Close()

		res, err := registerService(db).ExportProject(projectID)
		must(err)
		if out := pipeline.SerializeTabular(res.Rows, !exportNoHeaders); out != "" {
			fmt.Println(out)
		}
		if res.Skipped > 0 {
			fmt.Fprintf(os.Stderr, "skipped %d incomplete records\n", res.Skipped)
		}
	},
}

var exportListCmd = &cobra.Command{
	Use:   "export:list",
	Short: "Write a project's register as a legacy Equipment List workbook",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		if strings.TrimSpace(listOut) == "" {
			must(errors.New("--out is required"))
		}
		db := openDB()
		defer db.Close()

		must(registerService(db).ExportEquipmentList(projectID, listOut))
		fmt.Printf("equipment list written to %s\n", listOut)
	},
}

var importXLSXCmd = &cobra.Command{
	Use:   "import:xlsx",
	Short: "Append the rows of a legacy Equipment List workbook",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		requireProject()
		if strings.TrimSpace(importFile) == "" {
			must(errors.New("--file is required"))
		}
		content, err := os.ReadFile(importFile)
		must(err)

		db := openDB()
		defer db.Close()

		res, err := registerService(db).ImportEquipmentList(projectID, content, importForce)
		must(err)
		fmt.Printf("import done rows=%d appended=%d duplicates=%d\n", res.Rows, res.Appended, res.Duplicates)
	},
}

func init() {
	exportXLSXCmd.Flags().StringVar(&exportDir, "out", "", "output directory (default $OUTPUT_DIR)")
	exportTSVCmd.Flags().BoolVar(&exportNoHeaders, "no-headers", false, "omit the header line")
	exportListCmd.Flags().StringVar(&listOut, "out", "", "output xlsx path")
	importXLSXCmd.Flags().StringVar(&importFile, "file", "", "equipment list xlsx")
	importXLSXCmd.Flags().BoolVar(&importForce, "force", false, "append duplicates too")
}
