package model

// 顧客画面のページ
type Page string

const (
	PageHome    Page = "Home"
	PageOrder   Page = "Order"
	PageHistory Page = "History"
)

func (p Page) Valid() bool {
	switch p {
	case PageHome, PageOrder, PageHistory:
		return true
	}
	return false
}

// 管理画面のページ
type AdminPage string

const (
	AdminPageOrders    AdminPage = "Orders"
	AdminPageCustomers AdminPage = "Customers"
	AdminPageAnalytics AdminPage = "Analytics"
)

var AdminPages = []AdminPage{
	AdminPageOrders,
	AdminPageCustomers,
	AdminPageAnalytics,
}

func (p AdminPage) Valid() bool {
	switch p {
	case AdminPageOrders, AdminPageCustomers, AdminPageAnalytics:
		return true
	}
	return false
}
