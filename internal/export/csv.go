package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gasvision/internal/domain/model"
)

const (
	CSVFileName  = "orders_export.csv"
	XLSXFileName = "orders_export.xlsx"
)

var ErrMalformedRow = errors.New("malformed row")

// 出力列。保存先の内部IDは含めない。
var OrderColumns = []string{"id", "customer", "phone", "amount", "location", "delivery_time", "date", "status"}

func OrderRow(o model.Order) []string {
	return []string{
		o.ID,
		o.Customer,
		o.Phone,
		strconv.Itoa(o.AmountKg),
		o.Location,
		string(o.DeliveryTime),
		o.DateString(),
		string(o.Status),
	}
}

// 1行を注文に戻す。列はOrderColumnsの順。
func ParseOrderRow(row []string, loc *time.Location) (model.Order, error) {
	if len(row) != len(OrderColumns) {
		return model.Order{}, fmt.Errorf("want %d columns, got %d", len(OrderColumns), len(row))
	}
	amount, err := strconv.Atoi(strings.TrimSpace(row[3]))
	if err != nil {
		return model.Order{}, fmt.Errorf("amount: %w", err)
	}
	created, err := time.ParseInLocation(model.OrderDateLayout, row[6], loc)
	if err != nil {
		return model.Order{}, fmt.Errorf("date: %w", err)
	}
	return model.Order{
		ID:           row[0],
		Customer:     row[1],
		Phone:        row[2],
		AmountKg:     amount,
		Location:     row[4],
		DeliveryTime: model.DeliveryTime(row[5]),
		CreatedAt:    created,
		Status:       model.OrderStatus(row[7]),
	}, nil
}

// WriteOrdersCSV はヘッダ付きで書き出す。
func WriteOrdersCSV(w io.Writer, orders []model.Order) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(OrderColumns); err != nil {
		return err
	}
	for _, o := range orders {
		if err := cw.Write(OrderRow(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadOrdersCSV はWriteOrdersCSVの出力を読み戻す。日時はlocで解釈する。
func ReadOrdersCSV(r io.Reader, loc *time.Location) ([]model.Order, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return []model.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrMalformedRow, err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0)
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		o, err := ParseOrderRow(row, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRow, line, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func checkHeader(header []string) error {
	if len(header) != len(OrderColumns) {
		return fmt.Errorf("%w: header has %d columns", ErrMalformedRow, len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")) != OrderColumns[i] {
			return fmt.Errorf("%w: header column %d is %q, want %q", ErrMalformedRow, i+1, h, OrderColumns[i])
		}
	}
	return nil
}
