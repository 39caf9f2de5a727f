package models

import "github.com/shopspring/decimal"

func init() {
	// amounts go over the wire as JSON numbers, the frontend does arithmetic on them
	decimal.MarshalJSONWithoutQuotes = true
}
