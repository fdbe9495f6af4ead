package main

import (
	"context"
	"fmt"
	"log"

	slysheets "github.com/dunkyl/go-slysheets"
	"github.com/dunkyl/go-slysheets/adapters/excel"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	ctx := context.Background()

	// A local workbook works exactly like a remote spreadsheet. Swap
	// in googlesheets.NewWithJSONKeyFile for the real thing.
	transport, err := excel.New(excel.Config{FilePath: "./example.xlsx"})
	if err != nil {
		return fmt.Errorf("failed to create transport: %w", err)
	}

	sheet := slysheets.New(transport)
	page, err := sheet.Page(ctx, "Sheet1")
	if err != nil {
		return err
	}

	// Seed a small table: headers in row 0, then data.
	if err := page.SetRange(ctx, "A1:B3", [][]slysheets.CellValue{
		{"Foo", "Bar"},
		{int64(1), "a"},
		{int64(2), "b"},
	}); err != nil {
		return err
	}

	// A1 notation.
	a1, err := page.Cell(ctx, "A1")
	if err != nil {
		return err
	}
	fmt.Printf("Cell A1: %v\n", a1)

	// Zero-indexed rows.
	first, err := page.Row(ctx, 0)
	if err != nil {
		return err
	}
	fmt.Printf(" | %-6v | %-6v |\n", first.StringOr("A", ""), first.StringOr("B", ""))

	// Header-indexed columns.
	foos, err := page.ColumnNamed(ctx, "Foo")
	if err != nil {
		return err
	}
	fmt.Printf("Foos: %v\n", foos)

	// Polymorphic keys: spans of rows, indexed by header.
	result, err := page.Get(ctx, slysheets.Span{Start: 1, Stop: 3})
	if err != nil {
		return err
	}
	for _, row := range result.Rows() {
		fmt.Printf(" | %6d | %-6s |\n", row.Int64Or("Foo", 0), row.StringOr("Bar", ""))
	}

	// Append, of course.
	if err := page.AppendRecord(ctx, map[string]slysheets.CellValue{
		"Foo": int64(3), "Bar": "c",
	}); err != nil {
		return err
	}
	return nil
}
