package analytics

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-analytics-api/internal/domain"
)

type namedTotal struct {
	name  string
	total decimal.Decimal
}

// RegionBreakdown soma as vendas por região. Vendas sem região ficam de fora.
func RegionBreakdown(table SalesTable) []domain.NamedValue {
	totals := make(map[string]decimal.Decimal)
	for _, row := range table.rows {
		if row.Region == "" {
			continue
		}
		totals[row.Region] = totals[row.Region].Add(row.Amount)
	}

	regions := make([]domain.NamedValue, 0, len(totals))
	for region, total := range totals {
		regions = append(regions, domain.NamedValue{Name: region, Value: money(total)})
	}

	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Name < regions[j].Name
	})

	return regions
}

// ProductDistribution soma as vendas por nome de produto, do maior para o menor
func ProductDistribution(table SalesTable, products []*domain.Product) []domain.NamedValue {
	names := productNames(products)

	totals := make(map[string]decimal.Decimal)
	for _, row := range table.rows {
		name, ok := names[row.ProductID]
		if !ok {
			name = domain.UnknownProductName
		}
		totals[name] = totals[name].Add(row.Amount)
	}

	ranking := make([]namedTotal, 0, len(totals))
	for name, total := range totals {
		ranking = append(ranking, namedTotal{name: name, total: total})
	}

	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].total.Cmp(ranking[j].total); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].name < ranking[j].name
	})

	distribution := make([]domain.NamedValue, 0, len(ranking))
	for _, item := range ranking {
		distribution = append(distribution, domain.NamedValue{Name: item.name, Value: money(item.total)})
	}

	return distribution
}

type productSales struct {
	productID int
	quantity  int
	revenue   decimal.Decimal
}

// TopProducts retorna os produtos com maior receita, limitado a limit itens (limit <= 0 retorna todos)
func TopProducts(table SalesTable, products []*domain.Product, limit int) []domain.TopProduct {
	byProduct := make(map[int]*productSales)
	for _, row := range table.rows {
		sales, exists := byProduct[row.ProductID]
		if !exists {
			sales = &productSales{productID: row.ProductID, revenue: decimal.Zero}
			byProduct[row.ProductID] = sales
		}
		sales.quantity += row.Quantity
		sales.revenue = sales.revenue.Add(row.Amount)
	}

	ranking := make([]*productSales, 0, len(byProduct))
	for _, sales := range byProduct {
		ranking = append(ranking, sales)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if cmp := ranking[i].revenue.Cmp(ranking[j].revenue); cmp != 0 {
			return cmp > 0
		}
		return ranking[i].productID < ranking[j].productID
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}

	names := productNames(products)

	top := make([]domain.TopProduct, 0, len(ranking))
	for _, sales := range ranking {
		name, ok := names[sales.productID]
		if !ok {
			name = fmt.Sprintf("Product %d", sales.productID)
		}

		top = append(top, domain.TopProduct{
			ID:           sales.productID,
			Name:         name,
			TotalSold:    sales.quantity,
			TotalRevenue: money(sales.revenue),
		})
	}

	return top
}

// BuildSalesReport agrupa as vendas por vendedor, produto e mês (yyyy-mm)
func BuildSalesReport(table SalesTable, products []*domain.Product, users []*domain.User) domain.SalesReport {
	productNamesByID := productNames(products)
	userNamesByID := userNames(users)

	bySalesman := make(map[string]*reportAccumulator)
	byProduct := make(map[string]*reportAccumulator)
	byMonth := make(map[string]decimal.Decimal)

	for _, row := range table.rows {
		salesmanName, ok := userNamesByID[row.UserID]
		if !ok {
			salesmanName = domain.UnknownName
		}
		accumulate(bySalesman, salesmanName, row.Amount, 1)

		productName, ok := productNamesByID[row.ProductID]
		if !ok {
			productName = domain.UnknownProductName
		}
		accumulate(byProduct, productName, row.Amount, row.Quantity)

		month := row.Date.Format("2006-01")
		byMonth[month] = byMonth[month].Add(row.Amount)
	}

	report := domain.SalesReport{
		SalesBySalesman: toAmountCounts(bySalesman),
		SalesByProduct:  toAmountCounts(byProduct),
		SalesByMonth:    make(map[string]float64, len(byMonth)),
	}
	for month, total := range byMonth {
		report.SalesByMonth[month] = money(total)
	}

	return report
}

type reportAccumulator struct {
	amount decimal.Decimal
	count  int
}

func accumulate(groups map[string]*reportAccumulator, key string, amount decimal.Decimal, count int) {
	group, exists := groups[key]
	if !exists {
		group = &reportAccumulator{amount: decimal.Zero}
		groups[key] = group
	}
	group.amount = group.amount.Add(amount)
	group.count += count
}

func toAmountCounts(groups map[string]*reportAccumulator) map[string]*domain.AmountCount {
	result := make(map[string]*domain.AmountCount, len(groups))
	for key, group := range groups {
		result[key] = &domain.AmountCount{Amount: money(group.amount), Count: group.count}
	}
	return result
}

func userNames(users []*domain.User) map[int]string {
	names := make(map[int]string, len(users))
	for _, user := range users {
		if user == nil {
			continue
		}
		names[user.ID] = user.FullName
	}
	return names
}
