package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gasvision/internal/domain/model"
	"gasvision/internal/export"
	repo "gasvision/internal/repository"
	"gasvision/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func sampleOrders() []model.Order {
	d1 := time.Date(2024, 3, 2, 10, 0, 0, 0, time.UTC)
	d0 := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	return []model.Order{
		orderAt("GV0001", "0700", 13, d1),
		orderAt("GV0002", "0711", 6, d0),
		orderAt("GV0003", "0700", 13, d1),
		orderAt("GV0004", "0722", 50, d0),
	}
}

// =====================
// Aggregates
// =====================

func TestComputeMetrics(t *testing.T) {
	orders := sampleOrders()
	orders[3].Status = "Cancelled"

	m := usecase.ComputeMetrics(orders)
	assert.Equal(t, 4, m.TotalOrders)
	assert.Equal(t, 82, m.TotalGasKg)
	assert.Equal(t, 3, m.ConfirmedOrders)
	assert.Equal(t, 3, m.UniqueCustomers)
}

func TestDailyCounts_Ascending(t *testing.T) {
	got := usecase.DailyCounts(sampleOrders())

	assert.Equal(t, []usecase.DailyCount{
		{Date: "2024-03-01", Orders: 2},
		{Date: "2024-03-02", Orders: 2},
	}, got)
}

func TestAmountDistribution_CountDescThenAmountAsc(t *testing.T) {
	got := usecase.AmountDistribution(sampleOrders())

	assert.Equal(t, []usecase.AmountCount{
		{AmountKg: 13, Count: 2},
		{AmountKg: 6, Count: 1},
		{AmountKg: 50, Count: 1},
	}, got)
}

// =====================
// Views
// =====================

func TestAdminUsecase_View_DefaultsToOrders(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("FindAll", mock.Anything).Return(sampleOrders(), nil)

	uc := usecase.NewAdminUsecase(orders, new(CustomerRepoMock), t.TempDir())
	v, err := uc.View(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, model.AdminPageOrders, v.Page)
	assert.Equal(t, model.AdminPages, v.Pages)
	require.NotNil(t, v.Metrics)
	assert.Equal(t, 4, v.Metrics.TotalOrders)
	assert.Len(t, v.Orders, 4)
}

func TestAdminUsecase_View_InvalidPage(t *testing.T) {
	uc := usecase.NewAdminUsecase(new(OrderRepoMock), new(CustomerRepoMock), t.TempDir())
	_, err := uc.View(context.Background(), "Settings")
	assertErrContains(t, err, "invalid page")
}

func TestAdminUsecase_EmptyStates(t *testing.T) {
	ctx := context.Background()
	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	orders.On("FindAll", mock.Anything).Return([]model.Order{}, nil)
	customers.On("FindAll", mock.Anything).Return([]model.Customer{}, nil)

	uc := usecase.NewAdminUsecase(orders, customers, t.TempDir())

	v, err := uc.Orders(ctx)
	require.NoError(t, err)
	assert.Nil(t, v.Metrics)
	assert.Equal(t, usecase.MsgNoOrders, v.Notices[0].Message)

	v, err = uc.Customers(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgNoCustomers, v.Notices[0].Message)

	v, err = uc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, usecase.MsgNoAnalytics, v.Notices[0].Message)
}

func TestAdminUsecase_StoreErrors(t *testing.T) {
	orders := new(OrderRepoMock)
	orders.On("FindAll", mock.Anything).Return(nil, repo.ErrMalformedRecord).Once()
	orders.On("FindAll", mock.Anything).Return(nil, repo.ErrUnavailable).Once()

	uc := usecase.NewAdminUsecase(orders, new(CustomerRepoMock), t.TempDir())

	_, err := uc.Orders(context.Background())
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Status)
	assert.Equal(t, usecase.MsgMalformedRecord, he.Message)

	_, err = uc.Analytics(context.Background())
	he, ok = usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, he.Status)
}

// =====================
// Export / Import / Report
// =====================

func TestAdminUsecase_Export_CSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	orders := new(OrderRepoMock)
	orders.On("FindAll", mock.Anything).Return(sampleOrders(), nil)

	uc := usecase.NewAdminUsecase(orders, new(CustomerRepoMock), dir)
	msg, err := uc.Export(context.Background(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "Orders exported to orders_export.csv", msg)

	f, err := os.Open(filepath.Join(dir, export.CSVFileName))
	require.NoError(t, err)
	defer f.Close()

	got, err := export.ReadOrdersCSV(f, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, sampleOrders(), got)
}

func TestAdminUsecase_Export_XLSXAndInvalidFormat(t *testing.T) {
	dir := t.TempDir()
	orders := new(OrderRepoMock)
	orders.On("FindAll", mock.Anything).Return(sampleOrders(), nil)

	uc := usecase.NewAdminUsecase(orders, new(CustomerRepoMock), dir)
	msg, err := uc.Export(context.Background(), "xlsx")
	require.NoError(t, err)
	assert.Equal(t, "Orders exported to orders_export.xlsx", msg)
	assert.FileExists(t, filepath.Join(dir, export.XLSXFileName))

	_, err = uc.Export(context.Background(), "pdf")
	assertErrContains(t, err, "invalid format")
}

func TestAdminUsecase_Import(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteOrdersCSV(&buf, sampleOrders()))

	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil).Times(4)
	customers.On("Upsert", mock.Anything, mock.Anything).Return(nil).Times(4)

	uc := usecase.NewAdminUsecase(orders, customers, t.TempDir())
	n, err := uc.Import(context.Background(), &buf, usecase.ExportFormatCSV, time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	orders.AssertCalled(t, "Insert", mock.Anything, sampleOrders()[0])
	customers.AssertCalled(t, "Upsert", mock.Anything, model.Customer{
		Phone:     "0722",
		Name:      "Customer 0722",
		UpdatedAt: sampleOrders()[3].CreatedAt,
	})
}

func TestAdminUsecase_Import_MalformedRowWritesNothing(t *testing.T) {
	csv := strings.Join(export.OrderColumns, ",") + "\n" +
		"GV0001,Amina,0700,13,Westlands,Morning (8AM-12PM),2024-03-01 09:30,Confirmed\n" +
		"GV0002,Amina,0700,lots,Westlands,Morning (8AM-12PM),2024-03-01 09:30,Confirmed\n"

	orders := new(OrderRepoMock)
	uc := usecase.NewAdminUsecase(orders, new(CustomerRepoMock), t.TempDir())

	n, err := uc.Import(context.Background(), strings.NewReader(csv), usecase.ExportFormatCSV, time.UTC)
	assert.Equal(t, 0, n)
	assertErrContains(t, err, "line 3")
	assert.True(t, usecase.IsMalformedImport(err))
	assert.True(t, errors.Is(err, export.ErrMalformedRow))
	orders.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestAdminUsecase_Report(t *testing.T) {
	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	orders.On("FindAll", mock.Anything).Return(sampleOrders(), nil)
	customers.On("FindAll", mock.Anything).Return([]model.Customer{{Phone: "0700", Name: "Amina"}}, nil)

	uc := usecase.NewAdminUsecase(orders, customers, t.TempDir())

	var out bytes.Buffer
	require.NoError(t, uc.Report(context.Background(), &out))

	s := out.String()
	assert.Contains(t, s, "== Metrics ==")
	assert.Contains(t, s, "82 kg")
	assert.Contains(t, s, "GV0004")
	assert.Contains(t, s, "Amina")
	assert.Contains(t, s, "2024-03-01")
}

func TestAdminUsecase_Import_XLSXExportRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := new(OrderRepoMock)
	src.On("FindAll", mock.Anything).Return(sampleOrders(), nil)

	_, err := usecase.NewAdminUsecase(src, new(CustomerRepoMock), dir).Export(context.Background(), usecase.ExportFormatXLSX)
	require.NoError(t, err)

	path := filepath.Join(dir, export.XLSXFileName)
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	for _, o := range sampleOrders() {
		orders.On("Insert", mock.Anything, o).Return(nil).Once()
	}
	customers.On("Upsert", mock.Anything, mock.Anything).Return(nil).Times(4)

	uc := usecase.NewAdminUsecase(orders, customers, dir)
	n, err := uc.Import(context.Background(), f, usecase.ImportFormat(path), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	orders.AssertExpectations(t)
	customers.AssertExpectations(t)
}

func TestAdminUsecase_Import_CountsOrderWhenCustomerUpsertFails(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteOrdersCSV(&buf, sampleOrders()))

	orders := new(OrderRepoMock)
	customers := new(CustomerRepoMock)
	orders.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	customers.On("Upsert", mock.Anything, mock.Anything).Return(repo.ErrUnavailable).Once()

	uc := usecase.NewAdminUsecase(orders, customers, t.TempDir())
	n, err := uc.Import(context.Background(), &buf, usecase.ExportFormatCSV, time.UTC)

	assert.Equal(t, 1, n)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, he.Status)
	orders.AssertNumberOfCalls(t, "Insert", 1)
}

func TestImportFormat(t *testing.T) {
	assert.Equal(t, usecase.ExportFormatXLSX, usecase.ImportFormat("out/orders_export.XLSX"))
	assert.Equal(t, usecase.ExportFormatCSV, usecase.ImportFormat("orders_export.csv"))
	assert.Equal(t, usecase.ExportFormatCSV, usecase.ImportFormat("orders"))

	_, err := usecase.NewAdminUsecase(new(OrderRepoMock), new(CustomerRepoMock), t.TempDir()).
		Import(context.Background(), strings.NewReader(""), "pdf", time.UTC)
	assertErrContains(t, err, "invalid format")
}
