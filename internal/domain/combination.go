package domain

import (
	"sort"
	"strconv"
	"strings"
)

// Combination — одно присваивание ровно одного значения каждому атрибуту товара.
type Combination []AttributePair

// Signature возвращает канонический ключ комбинации: пары «атрибут=значение»,
// отсортированные по идентификатору атрибута. Порядок пар при создании
// не влияет на ключ, поэтому дубликаты ловятся независимо от него.
// По этому ключу построен уникальный индекс в хранилище.
func (c Combination) Signature() string {
	sorted := make([]AttributePair, len(c))
	copy(sorted, c)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].AttributeID != sorted[j].AttributeID {
			return sorted[i].AttributeID < sorted[j].AttributeID
		}
		return sorted[i].ValueID < sorted[j].ValueID
	})

	parts := make([]string, 0, len(sorted))
	for _, p := range sorted {
		parts = append(parts, strconv.FormatInt(p.AttributeID, 10)+"="+strconv.FormatInt(p.ValueID, 10))
	}
	return strings.Join(parts, "|")
}
