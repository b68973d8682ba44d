package domain

import "time"

// Product — ценовой срез товара. Собственная тройка цен используется
// только когда у товара нет ни одного варианта.
type Product struct {
	ID   int64
	Name string

	MoneySet

	ExchangeRateVersion    *string
	LastExchangeRateSyncAt *time.Time

	// AttributeIDs задаёт упорядоченные оси пространства комбинаций.
	AttributeIDs  []int64
	VariantsCount int64

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func NewProduct(name string, money MoneySet, attributeIDs []int64) *Product {
	p := &Product{
		Name:         name,
		MoneySet:     money,
		AttributeIDs: attributeIDs,
	}
	p.MoneySet.Sanitize()
	return p
}

// HasVariants сообщает, ведётся ли ценообразование через варианты.
func (p *Product) HasVariants() bool {
	return p.VariantsCount > 0
}
