package consumer

import (
	"cmp"
	"fmt"
	"io"
	"log"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/babagsm1/etsdiabalystore/models"
)

// SalesTracker accumulates order events received from the queue. Safe for use
// by several workers.
type SalesTracker struct {
	mu          sync.Mutex
	totalOrders int64
	revenue     int64
	units       map[string]int64
}

func NewSalesTracker() *SalesTracker {
	return &SalesTracker{
		units: make(map[string]int64),
	}
}

func (t *SalesTracker) Record(event models.OrderEvent) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.totalOrders++
	if event.Status != models.StatusCancelled {
		t.revenue += event.Total
	}
	for _, item := range event.Items {
		t.units[item.ProductID] += int64(item.Quantity)
	}

	log.Printf("Recorded order %s (Total orders: %d)", event.OrderID, t.totalOrders)
}

func (t *SalesTracker) TotalOrders() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.totalOrders
}

func (t *SalesTracker) Revenue() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.revenue
}

func (t *SalesTracker) Units(productID string) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.units[productID]
}

// WriteSummary prints totals and per-product units, best sellers first.
func (t *SalesTracker) WriteSummary(w io.Writer) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := slices.Collect(maps.Keys(t.units))
	slices.SortFunc(ids, func(a, b string) int {
		if c := cmp.Compare(t.units[b], t.units[a]); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})

	rule := strings.Repeat("=", 60)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "SALES SUMMARY")
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total Orders Processed: %d\n", t.totalOrders)
	fmt.Fprintf(w, "Revenue: %d\n", t.revenue)
	for _, id := range ids {
		fmt.Fprintf(w, "  Product %s: %d units\n", id, t.units[id])
	}
	fmt.Fprintln(w, rule)
}
