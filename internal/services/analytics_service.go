package services

import (
	"math"
	"sort"
	"time"

	"github.com/centsible/centsible/internal/models"
	"github.com/centsible/centsible/internal/repository"
)

type PeriodFilter string

const (
	FilterWeek  PeriodFilter = "week"
	FilterMonth PeriodFilter = "month"
	FilterYear  PeriodFilter = "year"
)

func (f PeriodFilter) Valid() bool {
	return f == FilterWeek || f == FilterMonth || f == FilterYear
}

// TimeBucket is one slot of the net-flow time series. Value is the signed
// sum of the bucket's transactions (income positive, expense negative),
// rounded to the nearest whole unit.
type TimeBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CategoryBucket is one row of the category breakdown. Income and expense
// both contribute positively to a category's magnitude.
type CategoryBucket struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// PeriodBucket holds unsigned income and expense totals for one sub-period.
type PeriodBucket struct {
	Name    string `json:"name"`
	Income  int    `json:"income"`
	Expense int    `json:"expense"`
}

type DashboardStats struct {
	NetRevenue          int     `json:"net_revenue"`
	GrowthPercent       float64 `json:"growth_percent"`
	TransactionCount    int     `json:"transaction_count"`
	ActiveCategoryCount int     `json:"active_category_count"`
}

type Aggregates struct {
	Series       []TimeBucket     `json:"series"`
	Distribution []CategoryBucket `json:"distribution"`
	Comparison   []PeriodBucket   `json:"comparison"`
	Stats        DashboardStats   `json:"stats"`
}

// WindowStart returns the inclusive lower bound of the aggregation window
// ending at now.
func WindowStart(filter PeriodFilter, now time.Time) time.Time {
	switch filter {
	case FilterWeek:
		return now.AddDate(0, 0, -7)
	case FilterMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

// ComputeAggregates turns a flat transaction list into the three chart
// series plus summary scalars for the window [WindowStart, now]. The input
// may also contain transactions from the immediately preceding window of
// equal length; those feed only the growth comparison. Pure function, no
// I/O, deterministic output.
func ComputeAggregates(transactions []models.Transaction, filter PeriodFilter, now time.Time) Aggregates {
	start := WindowStart(filter, now)
	prevStart := WindowStart(filter, start)

	var current, previous []models.Transaction
	for _, tx := range transactions {
		switch {
		case !tx.Date.Before(start) && !tx.Date.After(now):
			current = append(current, tx)
		case !tx.Date.Before(prevStart) && tx.Date.Before(start):
			previous = append(previous, tx)
		}
	}

	return Aggregates{
		Series:       buildSeries(current, filter, start, now),
		Distribution: buildDistribution(current),
		Comparison:   buildComparison(current, filter, start, now),
		Stats: DashboardStats{
			NetRevenue:          int(math.Round(netRevenue(current))),
			GrowthPercent:       growthPercent(netRevenue(current), netRevenue(previous)),
			TransactionCount:    len(current),
			ActiveCategoryCount: countCategories(current),
		},
	}
}

func signedAmount(tx models.Transaction) float64 {
	if tx.Type == models.TransactionTypeExpense {
		return -tx.Amount
	}
	return tx.Amount
}

func netRevenue(transactions []models.Transaction) float64 {
	var total float64
	for _, tx := range transactions {
		total += signedAmount(tx)
	}
	return total
}

// growthPercent compares the current window's net revenue against the
// previous window's. A zero previous period pins the result to 100, -100 or
// 0 depending on the sign of the current period.
func growthPercent(current, previous float64) float64 {
	if previous == 0 {
		switch {
		case current > 0:
			return 100
		case current < 0:
			return -100
		default:
			return 0
		}
	}
	growth := (current - previous) / math.Abs(previous) * 100
	return math.Round(growth*10) / 10
}

func countCategories(transactions []models.Transaction) int {
	seen := make(map[string]struct{})
	for _, tx := range transactions {
		seen[tx.Category] = struct{}{}
	}
	return len(seen)
}

// seriesLabels returns the fixed, zero-initialized bucket labels for the
// time series, oldest first, and a function mapping a transaction to its
// bucket index.
func seriesLabels(filter PeriodFilter, start, now time.Time) ([]string, func(models.Transaction) int) {
	switch filter {
	case FilterWeek:
		labels := make([]string, 7)
		index := make(map[time.Weekday]int, 7)
		for i := 0; i < 7; i++ {
			day := now.AddDate(0, 0, i-6)
			labels[i] = day.Weekday().String()[:3]
			index[day.Weekday()] = i
		}
		return labels, func(tx models.Transaction) int {
			return index[tx.Date.Weekday()]
		}
	case FilterMonth:
		labels := []string{"Week 1", "Week 2", "Week 3", "Week 4"}
		return labels, func(tx models.Transaction) int {
			days := int(tx.Date.Sub(start).Hours() / 24)
			week := days / 7
			if week < 0 {
				week = 0
			}
			// week 4 absorbs the overflow days past 28
			if week > 3 {
				week = 3
			}
			return week
		}
	default:
		labels := make([]string, 12)
		for i := 0; i < 12; i++ {
			labels[i] = now.AddDate(0, i-11, 0).Month().String()[:3]
		}
		nowMonths := now.Year()*12 + int(now.Month())
		return labels, func(tx models.Transaction) int {
			diff := nowMonths - (tx.Date.Year()*12 + int(tx.Date.Month()))
			idx := 11 - diff
			if idx < 0 {
				idx = 0
			}
			if idx > 11 {
				idx = 11
			}
			return idx
		}
	}
}

func buildSeries(transactions []models.Transaction, filter PeriodFilter, start, now time.Time) []TimeBucket {
	labels, bucketOf := seriesLabels(filter, start, now)

	values := make([]float64, len(labels))
	for _, tx := range transactions {
		values[bucketOf(tx)] += signedAmount(tx)
	}

	series := make([]TimeBucket, len(labels))
	for i, label := range labels {
		series[i] = TimeBucket{Name: label, Value: int(math.Round(values[i]))}
	}
	return series
}

func buildDistribution(transactions []models.Transaction) []CategoryBucket {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		totals[tx.Category] += tx.Amount
	}

	distribution := make([]CategoryBucket, 0, len(totals))
	for name, total := range totals {
		distribution = append(distribution, CategoryBucket{Name: name, Value: int(math.Round(total))})
	}
	sort.Slice(distribution, func(i, j int) bool {
		if distribution[i].Value != distribution[j].Value {
			return distribution[i].Value > distribution[j].Value
		}
		return distribution[i].Name < distribution[j].Name
	})
	return distribution
}

// buildComparison partitions like the time series, except the year filter
// buckets by calendar quarter rather than by month.
func buildComparison(transactions []models.Transaction, filter PeriodFilter, start, now time.Time) []PeriodBucket {
	var labels []string
	var bucketOf func(models.Transaction) int

	if filter == FilterYear {
		labels = []string{"Q1", "Q2", "Q3", "Q4"}
		bucketOf = func(tx models.Transaction) int {
			return (int(tx.Date.Month()) - 1) / 3
		}
	} else {
		labels, bucketOf = seriesLabels(filter, start, now)
	}

	income := make([]float64, len(labels))
	expense := make([]float64, len(labels))
	for _, tx := range transactions {
		idx := bucketOf(tx)
		if tx.Type == models.TransactionTypeIncome {
			income[idx] += tx.Amount
		} else {
			expense[idx] += tx.Amount
		}
	}

	comparison := make([]PeriodBucket, len(labels))
	for i, label := range labels {
		comparison[i] = PeriodBucket{
			Name:    label,
			Income:  int(math.Round(income[i])),
			Expense: int(math.Round(expense[i])),
		}
	}
	return comparison
}

type AnalyticsService struct {
	transactionRepo *repository.TransactionRepository
}

func NewAnalyticsService(transactionRepo *repository.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{transactionRepo: transactionRepo}
}

// Aggregates fetches the current and preceding windows in one query and
// hands them to the pure engine.
func (s *AnalyticsService) Aggregates(userID uint, filter PeriodFilter, now time.Time) (Aggregates, error) {
	start := WindowStart(filter, now)
	prevStart := WindowStart(filter, start)

	transactions, err := s.transactionRepo.FindInRange(userID, prevStart, now)
	if err != nil {
		return Aggregates{}, err
	}

	return ComputeAggregates(transactions, filter, now), nil
}
