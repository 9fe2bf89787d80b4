package export

import (
	"fmt"
	"io"
	"time"

	"gasvision/internal/domain/model"

	"github.com/xuri/excelize/v2"
)

const ordersSheet = "orders"

// WriteOrdersXLSX はCSVと同じ列で1シートに書く。amountは数値セル。
func WriteOrdersXLSX(w io.Writer, orders []model.Order) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return err
	}

	header := make([]interface{}, 0, len(OrderColumns))
	for _, c := range OrderColumns {
		header = append(header, c)
	}
	if err := f.SetSheetRow(ordersSheet, "A1", &header); err != nil {
		return err
	}

	for i, o := range orders {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			o.ID,
			o.Customer,
			o.Phone,
			o.AmountKg,
			o.Location,
			string(o.DeliveryTime),
			o.DateString(),
			string(o.Status),
		}
		if err := f.SetSheetRow(ordersSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// ReadOrdersXLSX はWriteOrdersXLSXの出力を読み戻す。
func ReadOrdersXLSX(r io.Reader, loc *time.Location) ([]model.Order, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: open xlsx: %v", ErrMalformedRow, err)
	}
	defer f.Close()

	rows, err := f.GetRows(ordersSheet)
	if err != nil {
		return nil, fmt.Errorf("%w: sheet %s: %v", ErrMalformedRow, ordersSheet, err)
	}
	if len(rows) == 0 {
		return []model.Order{}, nil
	}
	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	orders := make([]model.Order, 0, len(rows)-1)
	for i, row := range rows[1:] {
		//GetRowsは末尾の空セルを詰めるので足す
		for len(row) < len(OrderColumns) {
			row = append(row, "")
		}
		o, err := ParseOrderRow(row, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrMalformedRow, i+2, err)
		}
		orders = append(orders, o)
	}
	return orders, nil
}
