package googlesheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	slysheets "github.com/dunkyl/go-slysheets"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Transport implements slysheets.Transport over the Sheets v4 API.
type Transport struct {
	service *sheets.Service
	config  Config
}

var _ slysheets.Transport = (*Transport)(nil)

// New creates a Google Sheets transport with the provided client
// options. Use the NewWith* constructors for the common credential
// shapes.
func New(ctx context.Context, config Config, opts ...option.ClientOption) (*Transport, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Transport{
		service: service,
		config:  config.withDefaults(),
	}, nil
}

// FetchValues reads the unformatted values of a range.
func (t *Transport) FetchValues(ctx context.Context, rng string) ([][]slysheets.CellValue, error) {
	var resp *sheets.ValueRange
	err := t.withRetry(ctx, func() error {
		var err error
		resp, err = t.service.Spreadsheets.Values.Get(t.config.SpreadsheetID, rng).
			ValueRenderOption(string(RenderPlain)).
			DateTimeRenderOption(string(RenderSerialNumber)).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get values for %s: %w", rng, err)
	}
	values := make([][]slysheets.CellValue, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]slysheets.CellValue, 0, len(row))
		for _, v := range row {
			cells = append(cells, fromSheetValue(v))
		}
		values = append(values, cells)
	}
	return values, nil
}

// UpdateValues overwrites a range, interpreting values literally.
func (t *Transport) UpdateValues(ctx context.Context, rng string, values [][]slysheets.CellValue) error {
	vr := &sheets.ValueRange{
		Range:          rng,
		MajorDimension: string(DimensionRows),
		Values:         values,
	}
	err := t.withRetry(ctx, func() error {
		_, err := t.service.Spreadsheets.Values.Update(t.config.SpreadsheetID, rng, vr).
			ValueInputOption(string(InputRaw)).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", rng, err)
	}
	return nil
}

// AppendValues appends rows after the data table found at searchRange.
func (t *Transport) AppendValues(ctx context.Context, searchRange string, values [][]slysheets.CellValue) error {
	vr := &sheets.ValueRange{
		Range:          searchRange,
		MajorDimension: string(DimensionRows),
		Values:         values,
	}
	err := t.withRetry(ctx, func() error {
		_, err := t.service.Spreadsheets.Values.Append(t.config.SpreadsheetID, searchRange, vr).
			ValueInputOption(string(InputRaw)).
			InsertDataOption(string(InsertRows)).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to append at %s: %w", searchRange, err)
	}
	return nil
}

// ClearValues deletes the contents of a range, keeping formatting.
func (t *Transport) ClearValues(ctx context.Context, rng string) error {
	err := t.withRetry(ctx, func() error {
		_, err := t.service.Spreadsheets.Values.Clear(t.config.SpreadsheetID, rng, &sheets.ClearValuesRequest{}).
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to clear %s: %w", rng, err)
	}
	return nil
}

// FetchMetadata reads the spreadsheet's properties and page list.
func (t *Transport) FetchMetadata(ctx context.Context) (*slysheets.Metadata, error) {
	var resp *sheets.Spreadsheet
	err := t.withRetry(ctx, func() error {
		var err error
		resp, err = t.service.Spreadsheets.Get(t.config.SpreadsheetID).
			Fields("properties(title,timeZone)", "sheets(properties(sheetId,title,gridProperties(columnCount)))").
			Context(ctx).
			Do()
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet metadata: %w", err)
	}
	meta := &slysheets.Metadata{}
	if resp.Properties != nil {
		meta.Title = resp.Properties.Title
		meta.TimeZone = resp.Properties.TimeZone
	}
	for _, sh := range resp.Sheets {
		if sh.Properties == nil {
			continue
		}
		pm := slysheets.PageMeta{
			ID:    sh.Properties.SheetId,
			Title: sh.Properties.Title,
		}
		if sh.Properties.GridProperties != nil {
			pm.ColumnCount = sh.Properties.GridProperties.ColumnCount
		}
		meta.Pages = append(meta.Pages, pm)
	}
	return meta, nil
}

// withRetry runs call, retrying quota and server errors with
// exponential backoff up to MaxRetries.
func (t *Transport) withRetry(ctx context.Context, call func() error) error {
	var err error
	for i := 0; i <= t.config.MaxRetries; i++ {
		err = call()
		if err == nil || !retryable(err) {
			return err
		}
		if i < t.config.MaxRetries {
			backoff := t.config.RetryInterval * time.Duration(1<<uint(i))
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return fmt.Errorf("failed after %d retries: %w", t.config.MaxRetries, err)
}

// retryable reports whether an API error is worth retrying: rate
// limits and server-side failures.
func retryable(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == 429 || apiErr.Code >= 500
	}
	return false
}

// fromSheetValue converts an API cell value to a CellValue. The API
// returns JSON numbers as float64; integral ones come back as int64.
// Booleans have no CellValue representation and become their display
// strings.
func fromSheetValue(v interface{}) slysheets.CellValue {
	switch val := v.(type) {
	case float64:
		if val == float64(int64(val)) {
			return int64(val)
		}
		return val
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	default:
		return val
	}
}
