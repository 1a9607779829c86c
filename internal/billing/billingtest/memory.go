// Package billingtest provides an in-memory billing catalog for tests.
package billingtest

import (
	"context"
	"fmt"
	"sync"

	"partsimport/internal/billing"
)

// MemoryCatalog mimics the billing service closely enough for pipeline tests.
// Every method increments Calls, so tests can assert it was never reached.
type MemoryCatalog struct {
	mu       sync.Mutex
	products []*billing.Product
	prices   []*billing.Price
	calls    int

	// Err, when set, is returned by every method.
	Err error
}

var _ billing.Catalog = (*MemoryCatalog)(nil)

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{}
}

func (m *MemoryCatalog) FindProductBySKU(_ context.Context, sku string) (*billing.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.products {
		if p.Metadata[billing.MetadataSKU] == sku {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryCatalog) ListActivePrices(_ context.Context, productID string) ([]billing.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.activePrices(productID), nil
}

func (m *MemoryCatalog) CreateProduct(_ context.Context, in billing.ProductInput) (*billing.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	p := &billing.Product{
		ID:       fmt.Sprintf("prod_%d", len(m.products)+1),
		Name:     in.Name,
		Metadata: in.Metadata,
	}
	m.products = append(m.products, p)
	cp := *p
	return &cp, nil
}

func (m *MemoryCatalog) CreatePrice(_ context.Context, productID string, unitAmount int64, currency string) (*billing.Price, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.product(productID) == nil {
		return nil, fmt.Errorf("no such product: %s", productID)
	}
	pr := &billing.Price{
		ID:         fmt.Sprintf("price_%d", len(m.prices)+1),
		ProductID:  productID,
		UnitAmount: unitAmount,
		Currency:   currency,
		Active:     true,
	}
	m.prices = append(m.prices, pr)
	cp := *pr
	return &cp, nil
}

func (m *MemoryCatalog) DeactivatePrice(_ context.Context, priceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return m.Err
	}
	for _, pr := range m.prices {
		if pr.ID == priceID {
			pr.Active = false
			return nil
		}
	}
	return fmt.Errorf("no such price: %s", priceID)
}

func (m *MemoryCatalog) SetDefaultPrice(_ context.Context, productID, priceID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.Err != nil {
		return m.Err
	}
	p := m.product(productID)
	if p == nil {
		return fmt.Errorf("no such product: %s", productID)
	}
	p.DefaultPriceID = priceID
	return nil
}

// Calls reports how many catalog methods were invoked.
func (m *MemoryCatalog) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// Products returns copies of every product created so far.
func (m *MemoryCatalog) Products() []billing.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]billing.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out
}

// Prices returns copies of every price, active or not, for a product.
func (m *MemoryCatalog) Prices(productID string) []billing.Price {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []billing.Price
	for _, pr := range m.prices {
		if pr.ProductID == productID {
			out = append(out, *pr)
		}
	}
	return out
}

// ActivePrices is ListActivePrices without counting as a call.
func (m *MemoryCatalog) ActivePrices(productID string) []billing.Price {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.activePrices(productID)
}

func (m *MemoryCatalog) activePrices(productID string) []billing.Price {
	var out []billing.Price
	for _, pr := range m.prices {
		if pr.ProductID == productID && pr.Active {
			out = append(out, *pr)
		}
	}
	return out
}

func (m *MemoryCatalog) product(id string) *billing.Product {
	for _, p := range m.products {
		if p.ID == id {
			return p
		}
	}
	return nil
}
