package usecase

import (
	"testing"

	"github.com/matjar-tech/catalog-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorSizeAttributes() []domain.AttributeSummary {
	return []domain.AttributeSummary{
		{
			ID:     1,
			Name:   "Цвет",
			NameEn: "Color",
			Values: []domain.AttributeValue{
				{ID: 10, Value: "Красный", ValueEn: "Red"},
				{ID: 11, Value: "Синий", ValueEn: "Blue"},
			},
		},
		{
			ID:     2,
			Name:   "Размер",
			NameEn: "Size",
			Values: []domain.AttributeValue{
				{ID: 20, Value: "S", ValueEn: "S"},
				{ID: 21, Value: "M", ValueEn: "M"},
				{ID: 22, Value: "L", ValueEn: "L"},
			},
		},
	}
}

func TestGenerateCombinations_CartesianProduct(t *testing.T) {
	combos := GenerateCombinations(colorSizeAttributes())

	require.Len(t, combos, 6)

	// Порядок детерминирован: внешний цикл по первому атрибуту.
	assert.Equal(t, int64(10), combos[0][0].ValueID)
	assert.Equal(t, int64(20), combos[0][1].ValueID)
	assert.Equal(t, int64(10), combos[1][0].ValueID)
	assert.Equal(t, int64(21), combos[1][1].ValueID)
	assert.Equal(t, int64(11), combos[5][0].ValueID)
	assert.Equal(t, int64(22), combos[5][1].ValueID)

	// Каждая комбинация несёт денормализованные подписи.
	assert.Equal(t, "Color", combos[0][0].NameEn)
	assert.Equal(t, "Красный", combos[0][0].Value)
}

func TestGenerateCombinations_EmptyInput(t *testing.T) {
	assert.Nil(t, GenerateCombinations(nil))
	assert.Nil(t, GenerateCombinations([]domain.AttributeSummary{}))
}

func TestGenerateCombinations_AttributeWithoutValuesZeroesProduct(t *testing.T) {
	attrs := colorSizeAttributes()
	attrs[1].Values = nil

	assert.Nil(t, GenerateCombinations(attrs))
}

func TestGenerateCombinations_SingleAttribute(t *testing.T) {
	combos := GenerateCombinations(colorSizeAttributes()[:1])

	require.Len(t, combos, 2)
	assert.Len(t, combos[0], 1)
}

func TestCombinationSignature_OrderIndependent(t *testing.T) {
	a := domain.Combination{
		{AttributeID: 2, ValueID: 20},
		{AttributeID: 1, ValueID: 10},
	}
	b := domain.Combination{
		{AttributeID: 1, ValueID: 10},
		{AttributeID: 2, ValueID: 20},
	}

	assert.Equal(t, a.Signature(), b.Signature())
	assert.Equal(t, "1=10|2=20", b.Signature())
}

func TestCombinationSignature_NumericSort(t *testing.T) {
	// Сортировка по числовому ID, а не по строке: 2 < 10.
	c := domain.Combination{
		{AttributeID: 10, ValueID: 1},
		{AttributeID: 2, ValueID: 1},
	}

	assert.Equal(t, "2=1|10=1", c.Signature())
}
