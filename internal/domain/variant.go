package domain

import "time"

// AttributePair — пара «атрибут — значение» с денормализованными именами
// для быстрого рендеринга без обращения к каталогу атрибутов.
type AttributePair struct {
	AttributeID int64
	ValueID     int64
	Name        string
	NameEn      string
	Value       string
	ValueEn     string
}

// Variant описывает вариант товара: одну точку в пространстве комбинаций
// атрибутов со своей ценой и остатком.
type Variant struct {
	ID        int64
	ProductID int64

	// Attributes хранит упорядоченный набор пар «атрибут — значение».
	Attributes []AttributePair

	MoneySet

	ExchangeRateVersion    *string
	LastExchangeRateSyncAt *time.Time

	Stock       int64
	MinStock    int64
	IsActive    bool
	IsAvailable bool

	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

func NewVariant(productID int64, attributes []AttributePair, money MoneySet, stock int64) *Variant {
	v := &Variant{
		ProductID:   productID,
		Attributes:  attributes,
		MoneySet:    money,
		Stock:       stock,
		IsActive:    true,
		IsAvailable: stock > 0,
	}
	v.Sanitize()
	return v
}

// Combination возвращает комбинацию атрибутов варианта.
func (v *Variant) Combination() Combination {
	return Combination(v.Attributes)
}

// Sanitize приводит все числовые поля к допустимым значениям:
// отрицательные суммы и остатки заменяются нулём, а не отклоняются.
func (v *Variant) Sanitize() {
	v.MoneySet.Sanitize()
	if v.Stock < 0 {
		v.Stock = 0
	}
	if v.MinStock < 0 {
		v.MinStock = 0
	}
}
