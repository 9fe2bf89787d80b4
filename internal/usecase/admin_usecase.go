package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"gasvision/internal/domain/model"
	"gasvision/internal/export"
	repo "gasvision/internal/repository"
	"gasvision/internal/validator"
)

const (
	ExportFormatCSV  = "csv"
	ExportFormatXLSX = "xlsx"

	MsgNoOrders    = "No orders in database yet."
	MsgNoCustomers = "No customers in database yet."
	MsgNoAnalytics = "No data available for analytics."
)

const dailyDateLayout = "2006-01-02"

type Metrics struct {
	TotalOrders     int `json:"total_orders"`
	TotalGasKg      int `json:"total_gas_kg"`
	ConfirmedOrders int `json:"confirmed_orders"`
	UniqueCustomers int `json:"unique_customers"`
}

type DailyCount struct {
	Date   string `json:"date"`
	Orders int    `json:"orders"`
}

type AmountCount struct {
	AmountKg int `json:"amount"`
	Count    int `json:"count"`
}

// AdminView は管理画面1ページ分
type AdminView struct {
	Page      model.AdminPage   `json:"page"`
	Pages     []model.AdminPage `json:"pages"`
	Notices   []Notice          `json:"notices"`
	Metrics   *Metrics          `json:"metrics,omitempty"`
	Orders    []model.Order     `json:"orders,omitempty"`
	Customers []model.Customer  `json:"customers,omitempty"`
	Daily     []DailyCount      `json:"daily_orders,omitempty"`
	Amounts   []AmountCount     `json:"amount_distribution,omitempty"`
}

func ComputeMetrics(orders []model.Order) Metrics {
	m := Metrics{TotalOrders: len(orders)}
	phones := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		m.TotalGasKg += o.AmountKg
		if o.Status == model.OrderStatusConfirmed {
			m.ConfirmedOrders++
		}
		phones[o.Phone] = struct{}{}
	}
	m.UniqueCustomers = len(phones)
	return m
}

// DailyCounts は日付ごとの件数（日付の昇順）。日付は各注文の時刻のタイムゾーンで切る。
func DailyCounts(orders []model.Order) []DailyCount {
	counts := map[string]int{}
	for _, o := range orders {
		counts[o.CreatedAt.Format(dailyDateLayout)]++
	}
	out := make([]DailyCount, 0, len(counts))
	for d, n := range counts {
		out = append(out, DailyCount{Date: d, Orders: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// AmountDistribution は数量ごとの件数。件数の多い順、同数なら数量の小さい順。
func AmountDistribution(orders []model.Order) []AmountCount {
	counts := map[int]int{}
	for _, o := range orders {
		counts[o.AmountKg]++
	}
	out := make([]AmountCount, 0, len(counts))
	for a, n := range counts {
		out = append(out, AmountCount{AmountKg: a, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].AmountKg < out[j].AmountKg
	})
	return out
}

// AdminUsecase は保存先を毎回読み直す。書き込みは取込だけ。
type AdminUsecase struct {
	orders    repo.OrderRepository
	customers repo.CustomerRepository
	exportDir string
}

func NewAdminUsecase(orders repo.OrderRepository, customers repo.CustomerRepository, exportDir string) *AdminUsecase {
	if exportDir == "" {
		exportDir = "."
	}
	return &AdminUsecase{orders: orders, customers: customers, exportDir: exportDir}
}

// View はナビゲータで選んだページを出す。空ならOrders。
func (u *AdminUsecase) View(ctx context.Context, page string) (AdminView, error) {
	p := model.AdminPage(strings.TrimSpace(page))
	if p == "" {
		p = model.AdminPageOrders
	}

	switch p {
	case model.AdminPageOrders:
		return u.Orders(ctx)
	case model.AdminPageCustomers:
		return u.Customers(ctx)
	case model.AdminPageAnalytics:
		return u.Analytics(ctx)
	default:
		return AdminView{}, NewHTTPError(http.StatusBadRequest, "invalid page")
	}
}

func (u *AdminUsecase) Orders(ctx context.Context) (AdminView, error) {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return AdminView{}, storageError(err)
	}

	v := newAdminView(model.AdminPageOrders)
	if len(orders) == 0 {
		v.Notices = append(v.Notices, Notice{Level: NoticeInfo, Message: MsgNoOrders})
		return v, nil
	}
	m := ComputeMetrics(orders)
	v.Metrics = &m
	v.Orders = orders
	return v, nil
}

func (u *AdminUsecase) Customers(ctx context.Context) (AdminView, error) {
	customers, err := u.customers.FindAll(ctx)
	if err != nil {
		return AdminView{}, storageError(err)
	}

	v := newAdminView(model.AdminPageCustomers)
	if len(customers) == 0 {
		v.Notices = append(v.Notices, Notice{Level: NoticeInfo, Message: MsgNoCustomers})
		return v, nil
	}
	v.Customers = customers
	return v, nil
}

func (u *AdminUsecase) Analytics(ctx context.Context) (AdminView, error) {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return AdminView{}, storageError(err)
	}

	v := newAdminView(model.AdminPageAnalytics)
	if len(orders) == 0 {
		v.Notices = append(v.Notices, Notice{Level: NoticeInfo, Message: MsgNoAnalytics})
		return v, nil
	}
	v.Daily = DailyCounts(orders)
	v.Amounts = AmountDistribution(orders)
	return v, nil
}

// Export は今の注文をexportDirへ書き出し、画面用の文言を返す。
// 書き出しが終わるまで既存ファイルは置き換えない。
func (u *AdminUsecase) Export(ctx context.Context, format string) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = ExportFormatCSV
	}

	var (
		name  string
		write func(io.Writer, []model.Order) error
	)
	switch format {
	case ExportFormatCSV:
		name, write = export.CSVFileName, export.WriteOrdersCSV
	case ExportFormatXLSX:
		name, write = export.XLSXFileName, export.WriteOrdersXLSX
	default:
		return "", NewHTTPError(http.StatusBadRequest, "invalid format")
	}

	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return "", storageError(err)
	}

	var buf bytes.Buffer
	if err := write(&buf, orders); err != nil {
		return "", &HTTPError{Status: http.StatusInternalServerError, Message: "export failed", Cause: err}
	}

	path := filepath.Join(u.exportDir, name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return "", &HTTPError{Status: http.StatusInternalServerError, Message: "export failed", Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &HTTPError{Status: http.StatusInternalServerError, Message: "export failed", Cause: err}
	}

	return fmt.Sprintf("Orders exported to %s", name), nil
}

// WriteCSV はExportと同じCSVをwへ流す。
func (u *AdminUsecase) WriteCSV(ctx context.Context, w io.Writer) error {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return storageError(err)
	}
	return export.WriteOrdersCSV(w, orders)
}

// Import は書き出したCSV/XLSXを保存先へ戻す。
// 全行を検証してから書くので、壊れた行があれば何も書かない。
// 途中で保存先が落ちたら、それまでに書いた件数を返す。
func (u *AdminUsecase) Import(ctx context.Context, r io.Reader, format string, loc *time.Location) (int, error) {
	if loc == nil {
		loc = time.Local
	}

	var read func(io.Reader, *time.Location) ([]model.Order, error)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", ExportFormatCSV:
		read = export.ReadOrdersCSV
	case ExportFormatXLSX:
		read = export.ReadOrdersXLSX
	default:
		return 0, NewHTTPError(http.StatusBadRequest, "invalid format")
	}

	orders, err := read(r, loc)
	if err != nil {
		return 0, &HTTPError{Status: http.StatusBadRequest, Message: MsgMalformedRecord, Cause: err}
	}

	for i, o := range orders {
		if err := validator.ValidateStoredOrder(o); err != nil {
			// ヘッダが1行目
			return 0, &HTTPError{
				Status:  http.StatusBadRequest,
				Message: MsgMalformedRecord,
				Cause:   fmt.Errorf("%w: line %d: %v", export.ErrMalformedRow, i+2, err),
			}
		}
	}

	for i, o := range orders {
		if err := u.orders.Insert(ctx, o); err != nil {
			return i, storageError(err)
		}
		//注文は入ったので件数に含める
		if err := u.customers.Upsert(ctx, model.Customer{Phone: o.Phone, Name: o.Customer, UpdatedAt: o.CreatedAt}); err != nil {
			return i + 1, storageError(err)
		}
	}
	return len(orders), nil
}

// ImportFormat はファイル名の拡張子から取込形式を決める。
func ImportFormat(path string) string {
	if strings.EqualFold(filepath.Ext(path), "."+ExportFormatXLSX) {
		return ExportFormatXLSX
	}
	return ExportFormatCSV
}

// Report は3ページ分を端末向けの表で書く。
func (u *AdminUsecase) Report(ctx context.Context, w io.Writer) error {
	orders, err := u.orders.FindAll(ctx)
	if err != nil {
		return storageError(err)
	}
	customers, err := u.customers.FindAll(ctx)
	if err != nil {
		return storageError(err)
	}

	orderRows := make([][]string, 0, len(orders))
	for _, o := range orders {
		orderRows = append(orderRows, export.OrderRow(o))
	}

	customerRows := make([][]string, 0, len(customers))
	for _, c := range customers {
		customerRows = append(customerRows, []string{c.Phone, c.Name})
	}

	var metricRows [][]string
	if len(orders) > 0 {
		m := ComputeMetrics(orders)
		metricRows = [][]string{
			{"Total Orders", strconv.Itoa(m.TotalOrders)},
			{"Total Gas Ordered", fmt.Sprintf("%d kg", m.TotalGasKg)},
			{"Confirmed Orders", strconv.Itoa(m.ConfirmedOrders)},
			{"Unique Customers", strconv.Itoa(m.UniqueCustomers)},
		}
	}

	dailyRows := make([][]string, 0)
	for _, d := range DailyCounts(orders) {
		dailyRows = append(dailyRows, []string{d.Date, strconv.Itoa(d.Orders)})
	}
	amountRows := make([][]string, 0)
	for _, a := range AmountDistribution(orders) {
		amountRows = append(amountRows, []string{strconv.Itoa(a.AmountKg), strconv.Itoa(a.Count)})
	}

	err = export.RenderTables(w,
		export.Table{Title: "Metrics", Header: []string{"metric", "value"}, Rows: metricRows, Empty: MsgNoOrders},
		export.Table{Title: "Orders", Header: export.OrderColumns, Rows: orderRows, Empty: MsgNoOrders},
		export.Table{Title: "Customers", Header: []string{"phone", "name"}, Rows: customerRows, Empty: MsgNoCustomers},
		export.Table{Title: "Orders by day", Header: []string{"date", "orders"}, Rows: dailyRows, Empty: MsgNoAnalytics},
		export.Table{Title: "Amount distribution", Header: []string{"amount", "count"}, Rows: amountRows, Empty: MsgNoAnalytics},
	)
	if err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func newAdminView(p model.AdminPage) AdminView {
	return AdminView{
		Page:    p,
		Pages:   model.AdminPages,
		Notices: []Notice{},
	}
}

// IsMalformedImport は取込の失敗が入力側のものか
func IsMalformedImport(err error) bool {
	return errors.Is(err, export.ErrMalformedRow)
}
