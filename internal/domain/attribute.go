package domain

// AttributeValue — одно значение атрибута с локализованными подписями.
type AttributeValue struct {
	ID      int64
	Value   string
	ValueEn string
	HexCode *string
}

// AttributeSummary — сводка атрибута из внешнего каталога.
// Только для чтения: движок обогащает комбинации, но не меняет каталог.
type AttributeSummary struct {
	ID     int64
	Name   string
	NameEn string
	Values []AttributeValue
}

// ValueByID возвращает значение атрибута по идентификатору.
func (a *AttributeSummary) ValueByID(id int64) (AttributeValue, bool) {
	for _, v := range a.Values {
		if v.ID == id {
			return v, true
		}
	}
	return AttributeValue{}, false
}
