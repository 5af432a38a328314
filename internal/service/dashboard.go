package service

import (
	"sort"
	"time"

	"restaurant-storefront/internal/domain"
	"restaurant-storefront/internal/state"
)

const (
	recentOrdersLimit     = 5
	featuredProductsLimit = 5
	defaultSeriesDays     = 7
	maxSeriesDays         = 365
)

type DailyPoint struct {
	Day     string `json:"day"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type DashboardStats struct {
	ActiveOrders         int              `json:"activeOrders"`
	TotalOrders          int              `json:"totalOrders"`
	TotalCustomers       int              `json:"totalCustomers"`
	TotalRevenue         int64            `json:"totalRevenue"`
	AverageOrderValue    int64            `json:"averageOrderValue"`
	CanceledOrdersAmount int64            `json:"canceledOrdersAmount"`
	RecentOrders         []domain.Order   `json:"recentOrders"`
	FeaturedProducts     []domain.Product `json:"featuredProducts"`
	Series               []DailyPoint     `json:"series"`
}

type DashboardService struct {
	orders  OrderInterface
	revenue RevenueInterface
	catalog CatalogInterface
	now     func() time.Time
}

func NewDashboardService(orders OrderInterface, revenue RevenueInterface, catalog CatalogInterface) *DashboardService {
	return &DashboardService{orders: orders, revenue: revenue, catalog: catalog, now: time.Now}
}

// Stats summarises orders and revenue. The series covers the last days
// calendar days ending today; revenue in it skips cancelled orders while the
// order count includes them.
func (s *DashboardService) Stats(days int) DashboardStats {
	if days < 1 {
		days = defaultSeriesDays
	}
	if days > maxSeriesDays {
		days = maxSeriesDays
	}

	orders := s.orders.List()
	ledger := s.revenue.Ledger()
	stats := DashboardStats{
		TotalOrders:          len(orders),
		TotalRevenue:         ledger.TotalRevenue,
		CanceledOrdersAmount: ledger.CanceledOrdersAmount,
		FeaturedProducts:     []domain.Product{},
	}

	customers := map[string]bool{}
	for _, o := range orders {
		if !state.IsTerminal(o.Status) {
			stats.ActiveOrders++
		}
		customers[o.UserID] = true
	}
	stats.TotalCustomers = len(customers)
	if stats.TotalOrders > 0 {
		stats.AverageOrderValue = stats.TotalRevenue / int64(stats.TotalOrders)
	}

	recent := append([]domain.Order{}, orders...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentOrdersLimit {
		recent = recent[:recentOrdersLimit]
	}
	stats.RecentOrders = recent

	if s.catalog != nil {
		featured := s.catalog.Featured()
		if len(featured) > featuredProductsLimit {
			featured = featured[:featuredProductsLimit]
		}
		stats.FeaturedProducts = featured
	}

	stats.Series = s.series(orders, days)
	return stats
}

func (s *DashboardService) series(orders []domain.Order, days int) []DailyPoint {
	today := s.now().UTC()
	points := make([]DailyPoint, days)
	index := make(map[string]int, days)
	for i := 0; i < days; i++ {
		day := state.DayKey(today.AddDate(0, 0, i-days+1))
		points[i] = DailyPoint{Day: day}
		index[day] = i
	}
	for _, o := range orders {
		i, ok := index[state.DayKey(o.CreatedAt)]
		if !ok {
			continue
		}
		points[i].Orders++
		if o.Status != domain.StatusCancelled {
			points[i].Revenue += o.Total
		}
	}
	return points
}
