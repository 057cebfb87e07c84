package stats

import (
	"fmt"
	"sort"
	"time"

	"github.com/rogerio-castellano/ims-backend/internal/models"
)

// ProductCounter is the slice of the product store the aggregator reads.
type ProductCounter interface {
	CountAll() (int, error)
	SumStock() (int, error)
	SumValue() (float64, error)
	CountByCategory(category models.Category) (int, error)
}

// MovementCounter is the slice of the movement store the aggregator reads.
type MovementCounter interface {
	CountByTypeAfter(t models.MovementType, since time.Time) (int, error)
	CountByTypeBetween(t models.MovementType, start, end time.Time) (int, error)
	CountByUsernameAfter(since time.Time) ([]models.UsernameCount, error)
	CountByProductCategory(category models.Category) (int, error)
}

type Summary struct {
	TotalProducts int     `json:"total_products"`
	TotalStock    int     `json:"total_stock"`
	TotalValue    float64 `json:"total_value"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type DayCount struct {
	Date  time.Time `json:"date"`
	Count int       `json:"count"`
}

type Last24Hours struct {
	In       int                    `json:"in"`
	Out      int                    `json:"out"`
	TopUsers []models.UsernameCount `json:"top_users"`
}

type Last7Days struct {
	In  []DayCount `json:"in"`
	Out []DayCount `json:"out"`
}

// Snapshot is the dashboard aggregate: overall summary, per-category
// distributions, a rolling 24-hour window and a 7-day daily series.
type Snapshot struct {
	Summary                Summary         `json:"summary"`
	CategoriesDistribution []CategoryCount `json:"categories_distribution"`
	CategoriesMovement     []CategoryCount `json:"categories_movement"`
	MovementsLast24Hours   Last24Hours     `json:"movements_last_24_hours"`
	MovementsLast7Days     Last7Days       `json:"movements_last_7_days"`
}

const topUserLimit = 3

// Aggregate builds a dashboard snapshot from the product and movement stores.
// It is read-only; store failures are returned as-is for the caller to decide.
func Aggregate(products ProductCounter, movements MovementCounter, now time.Time) (Snapshot, error) {
	var snap Snapshot
	var err error

	if snap.Summary, err = summary(products); err != nil {
		return Snapshot{}, err
	}
	if snap.CategoriesDistribution, err = categoryCounts(products.CountByCategory); err != nil {
		return Snapshot{}, fmt.Errorf("categories distribution: %w", err)
	}
	// Movements join against live products here, so movements whose product has
	// since been deleted are not counted.
	if snap.CategoriesMovement, err = categoryCounts(movements.CountByProductCategory); err != nil {
		return Snapshot{}, fmt.Errorf("categories movement: %w", err)
	}
	if snap.MovementsLast24Hours, err = last24Hours(movements, now); err != nil {
		return Snapshot{}, fmt.Errorf("last 24 hours: %w", err)
	}
	if snap.MovementsLast7Days, err = last7Days(movements, now); err != nil {
		return Snapshot{}, fmt.Errorf("last 7 days: %w", err)
	}

	return snap, nil
}

func summary(products ProductCounter) (Summary, error) {
	total, err := products.CountAll()
	if err != nil {
		return Summary{}, fmt.Errorf("count products: %w", err)
	}
	stock, err := products.SumStock()
	if err != nil {
		return Summary{}, fmt.Errorf("sum stock: %w", err)
	}
	value, err := products.SumValue()
	if err != nil {
		return Summary{}, fmt.Errorf("sum value: %w", err)
	}
	return Summary{TotalProducts: total, TotalStock: stock, TotalValue: value}, nil
}

func categoryCounts(count func(models.Category) (int, error)) ([]CategoryCount, error) {
	counts := make([]CategoryCount, 0, len(models.Categories))
	for _, c := range models.Categories {
		n, err := count(c)
		if err != nil {
			return nil, err
		}
		counts = append(counts, CategoryCount{Name: string(c), Value: n})
	}
	return counts, nil
}

func last24Hours(movements MovementCounter, now time.Time) (Last24Hours, error) {
	since := now.Add(-24 * time.Hour)

	in, err := movements.CountByTypeAfter(models.MovementIncoming, since)
	if err != nil {
		return Last24Hours{}, err
	}
	out, err := movements.CountByTypeAfter(models.MovementOutgoing, since)
	if err != nil {
		return Last24Hours{}, err
	}
	users, err := movements.CountByUsernameAfter(since)
	if err != nil {
		return Last24Hours{}, err
	}

	// Count descending, username ascending on ties, so the ranking does not
	// depend on store iteration order.
	sort.Slice(users, func(i, j int) bool {
		if users[i].Count != users[j].Count {
			return users[i].Count > users[j].Count
		}
		return users[i].Username < users[j].Username
	})
	if len(users) > topUserLimit {
		users = users[:topUserLimit]
	}

	return Last24Hours{In: in, Out: out, TopUsers: users}, nil
}

func last7Days(movements MovementCounter, now time.Time) (Last7Days, error) {
	series := Last7Days{
		In:  make([]DayCount, 0, 7),
		Out: make([]DayCount, 0, 7),
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	// Oldest bucket first, today last.
	for i := 6; i >= 0; i-- {
		start := midnight.AddDate(0, 0, -i)
		end := start.AddDate(0, 0, 1)

		in, err := movements.CountByTypeBetween(models.MovementIncoming, start, end)
		if err != nil {
			return Last7Days{}, err
		}
		out, err := movements.CountByTypeBetween(models.MovementOutgoing, start, end)
		if err != nil {
			return Last7Days{}, err
		}
		series.In = append(series.In, DayCount{Date: start, Count: in})
		series.Out = append(series.Out, DayCount{Date: start, Count: out})
	}

	return series, nil
}
