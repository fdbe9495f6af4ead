package excel_test

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	slysheets "github.com/dunkyl/go-slysheets"
	"github.com/dunkyl/go-slysheets/adapters/excel"
)

func newTestTransport(t *testing.T) *excel.Transport {
	t.Helper()
	tr, err := excel.New(excel.Config{
		FilePath: filepath.Join(t.TempDir(), "test.xlsx"),
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	return tr
}

func seed(t *testing.T, tr *excel.Transport) {
	t.Helper()
	err := tr.UpdateValues(context.Background(), "'Sheet1'!A1:B3", [][]slysheets.CellValue{
		{"Foo", "Bar"},
		{int64(1), "a"},
		{int64(2), "b"},
	})
	if err != nil {
		t.Fatalf("seed error: %v", err)
	}
}

func TestNew_RequiresPath(t *testing.T) {
	if _, err := excel.New(excel.Config{}); err == nil {
		t.Error("expected error for empty file path")
	}
}

func TestUpdateAndFetch(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)

	values, err := tr.FetchValues(context.Background(), "'Sheet1'!A1:B3")
	if err != nil {
		t.Fatalf("FetchValues error: %v", err)
	}
	want := [][]slysheets.CellValue{
		{"Foo", "Bar"},
		{int64(1), "a"},
		{int64(2), "b"},
	}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("FetchValues = %v, want %v", values, want)
	}
}

func TestFetch_OpenRange(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)

	values, err := tr.FetchValues(context.Background(), "'Sheet1'!A:A")
	if err != nil {
		t.Fatalf("FetchValues error: %v", err)
	}
	want := [][]slysheets.CellValue{{"Foo"}, {int64(1)}, {int64(2)}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("FetchValues = %v, want %v", values, want)
	}
}

func TestFetch_MissingFile(t *testing.T) {
	tr := newTestTransport(t)
	values, err := tr.FetchValues(context.Background(), "'Sheet1'!A1")
	if err != nil {
		t.Fatalf("FetchValues error: %v", err)
	}
	if len(values) != 0 {
		t.Errorf("FetchValues on missing file = %v, want empty", values)
	}
}

func TestFetch_InvalidRange(t *testing.T) {
	tr := newTestTransport(t)
	if _, err := tr.FetchValues(context.Background(), "not a range"); err == nil {
		t.Error("expected error for invalid notation")
	}
}

func TestAppend(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)
	ctx := context.Background()

	err := tr.AppendValues(ctx, "'Sheet1'!A1", [][]slysheets.CellValue{
		{int64(3), "c"},
	})
	if err != nil {
		t.Fatalf("AppendValues error: %v", err)
	}

	values, err := tr.FetchValues(ctx, "'Sheet1'!A4:B4")
	if err != nil {
		t.Fatalf("FetchValues error: %v", err)
	}
	want := [][]slysheets.CellValue{{int64(3), "c"}}
	if !reflect.DeepEqual(values, want) {
		t.Errorf("appended row = %v, want %v", values, want)
	}
}

func TestClear(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)
	ctx := context.Background()

	if err := tr.ClearValues(ctx, "'Sheet1'!A2:B3"); err != nil {
		t.Fatalf("ClearValues error: %v", err)
	}
	values, err := tr.FetchValues(ctx, "'Sheet1'!A1:B3")
	if err != nil {
		t.Fatalf("FetchValues error: %v", err)
	}
	if len(values) != 1 {
		t.Errorf("after clear = %v, want header row only", values)
	}
}

func TestMetadata(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)

	meta, err := tr.FetchMetadata(context.Background())
	if err != nil {
		t.Fatalf("FetchMetadata error: %v", err)
	}
	if meta.Title != "test" {
		t.Errorf("Title = %q, want test", meta.Title)
	}
	if meta.TimeZone != "UTC" {
		t.Errorf("TimeZone = %q, want UTC", meta.TimeZone)
	}
	found := false
	for _, p := range meta.Pages {
		if p.Title == "Sheet1" {
			found = true
		}
	}
	if !found {
		t.Errorf("Pages = %v, want Sheet1 present", meta.Pages)
	}
}

// A workbook that has not been written yet still reports a default
// page, so a session can address Sheet1 before the first write.
func TestMetadata_MissingFile(t *testing.T) {
	tr := newTestTransport(t)
	ctx := context.Background()

	meta, err := tr.FetchMetadata(ctx)
	if err != nil {
		t.Fatalf("FetchMetadata error: %v", err)
	}
	if meta.Title != "test" || meta.TimeZone != "UTC" {
		t.Errorf("metadata = %+v", meta)
	}
	if len(meta.Pages) != 1 || meta.Pages[0].Title != "Sheet1" {
		t.Fatalf("Pages = %v, want default Sheet1", meta.Pages)
	}

	page, err := slysheets.New(tr).Page(ctx, "Sheet1")
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	if err := page.SetRange(ctx, "A1:B1", [][]slysheets.CellValue{{"Foo", "Bar"}}); err != nil {
		t.Fatalf("SetRange error: %v", err)
	}
}

func TestEndToEnd(t *testing.T) {
	tr := newTestTransport(t)
	seed(t, tr)
	ctx := context.Background()

	page, err := slysheets.New(tr).Page(ctx, "Sheet1")
	if err != nil {
		t.Fatalf("Page error: %v", err)
	}
	row, err := page.Row(ctx, 1)
	if err != nil {
		t.Fatalf("Row error: %v", err)
	}
	if got := row.Int64Or("Foo", -1); got != 1 {
		t.Errorf("row Foo = %d, want 1", got)
	}
	foos, err := page.ColumnNamed(ctx, "Foo")
	if err != nil {
		t.Fatalf("ColumnNamed error: %v", err)
	}
	want := []slysheets.CellValue{"Foo", int64(1), int64(2)}
	if !reflect.DeepEqual(foos, want) {
		t.Errorf("ColumnNamed = %v, want %v", foos, want)
	}
}
