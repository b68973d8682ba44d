package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// RatesRedisModel — JSON-представление снимка курсов в кэше.
type RatesRedisModel struct {
	USDToSAR decimal.Decimal `json:"usd_to_sar"`
	USDToYER decimal.Decimal `json:"usd_to_yer"`
	Version  string          `json:"version"`
	AsOf     time.Time       `json:"as_of"`
}

type AttributeValueRedisModel struct {
	ID      int64   `json:"id"`
	Value   string  `json:"value"`
	ValueEn string  `json:"value_en"`
	HexCode *string `json:"hex_code,omitempty"`
}

// AttributeRedisModel — JSON-представление сводки атрибута в кэше.
type AttributeRedisModel struct {
	ID     int64                      `json:"id"`
	Name   string                     `json:"name"`
	NameEn string                     `json:"name_en"`
	Values []AttributeValueRedisModel `json:"values"`
}
