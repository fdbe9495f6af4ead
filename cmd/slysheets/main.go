// Command slysheets reads and edits spreadsheet ranges from the
// command line, against Google Sheets or a local .xlsx workbook.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	slysheets "github.com/dunkyl/go-slysheets"
	"github.com/dunkyl/go-slysheets/adapters/excel"
	"github.com/dunkyl/go-slysheets/adapters/googlesheets"
)

var (
	spreadsheetID string
	credentials   string
	excelPath     string
	pageTitle     string
)

func main() {
	// .env is optional; flags and the environment win.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "slysheets",
		Short:         "Read and edit spreadsheet ranges",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&spreadsheetID, "spreadsheet", os.Getenv("SPREADSHEET_ID"), "Google spreadsheet ID")
	rootCmd.PersistentFlags().StringVar(&credentials, "credentials", "", "service account JSON key file")
	rootCmd.PersistentFlags().StringVar(&excelPath, "excel", "", "use a local .xlsx workbook instead of Google Sheets")
	rootCmd.PersistentFlags().StringVar(&pageTitle, "page", "", "page title (default: first page)")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "get <key>",
			Short: "Fetch a cell, range, row, or header column",
			Args:  cobra.ExactArgs(1),
			RunE:  runGet,
		},
		&cobra.Command{
			Use:   "set <a1> <value>",
			Short: "Overwrite a single cell",
			Args:  cobra.ExactArgs(2),
			RunE:  runSet,
		},
		&cobra.Command{
			Use:   "append <value>...",
			Short: "Append a row after the page's data",
			Args:  cobra.MinimumNArgs(1),
			RunE:  runAppend,
		},
		&cobra.Command{
			Use:   "clear <a1>",
			Short: "Clear the contents of a range",
			Args:  cobra.ExactArgs(1),
			RunE:  runClear,
		},
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openPage(ctx context.Context) (*slysheets.Page, error) {
	var transport slysheets.Transport
	var err error
	if excelPath != "" {
		transport, err = excel.New(excel.Config{FilePath: excelPath})
	} else {
		if spreadsheetID == "" {
			return nil, fmt.Errorf("a spreadsheet ID is required (--spreadsheet or SPREADSHEET_ID)")
		}
		transport, err = googlesheets.NewWithJSONKeyFile(ctx,
			googlesheets.Config{SpreadsheetID: spreadsheetID}, credentials)
	}
	if err != nil {
		return nil, err
	}

	sheet := slysheets.New(transport)
	if pageTitle != "" {
		return sheet.Page(ctx, pageTitle)
	}
	pages, err := sheet.Pages(ctx)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("spreadsheet has no pages")
	}
	return pages[0], nil
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	page, err := openPage(ctx)
	if err != nil {
		return err
	}
	result, err := page.Get(ctx, slysheets.Str(args[0]))
	if err != nil {
		return err
	}
	if v, ok := result.Scalar(); ok {
		fmt.Println(formatCell(v))
		return nil
	}
	for _, rec := range result.Rows() {
		for i, v := range rec.Values() {
			if i > 0 {
				fmt.Print("\t")
			}
			fmt.Print(formatCell(v))
		}
		fmt.Println()
	}
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	page, err := openPage(ctx)
	if err != nil {
		return err
	}
	return page.SetCell(ctx, args[0], parseCell(args[1]))
}

func runAppend(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	page, err := openPage(ctx)
	if err != nil {
		return err
	}
	row := make([]slysheets.CellValue, 0, len(args))
	for _, arg := range args {
		row = append(row, parseCell(arg))
	}
	return page.Append(ctx, row)
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	page, err := openPage(ctx)
	if err != nil {
		return err
	}
	return page.Clear(ctx, args[0])
}

func parseCell(s string) slysheets.CellValue {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

func formatCell(v slysheets.CellValue) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%v", v)
}
