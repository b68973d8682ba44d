package usecase

import "github.com/matjar-tech/catalog-backend/internal/domain"

// GenerateCombinations строит декартово произведение значений атрибутов:
// по одной паре «атрибут — значение» на каждую ось. Порядок осей в каждой
// комбинации повторяет порядок входных атрибутов, чтобы последующая логика
// SKU и отображения была детерминированной.
//
// Ноль атрибутов даёт пустой результат (не одну пустую комбинацию):
// генерировать варианты без единой оси бессмысленно. Атрибут без значений
// обнуляет всё произведение.
func GenerateCombinations(attributes []domain.AttributeSummary) []domain.Combination {
	if len(attributes) == 0 {
		return nil
	}

	total := 1
	for _, attr := range attributes {
		total *= len(attr.Values)
	}
	if total == 0 {
		return nil
	}

	combos := []domain.Combination{{}}
	for _, attr := range attributes {
		next := make([]domain.Combination, 0, len(combos)*len(attr.Values))
		for _, base := range combos {
			for _, val := range attr.Values {
				combo := make(domain.Combination, len(base), len(base)+1)
				copy(combo, base)
				combo = append(combo, domain.AttributePair{
					AttributeID: attr.ID,
					ValueID:     val.ID,
					Name:        attr.Name,
					NameEn:      attr.NameEn,
					Value:       val.Value,
					ValueEn:     val.ValueEn,
				})
				next = append(next, combo)
			}
		}
		combos = next
	}

	return combos
}
