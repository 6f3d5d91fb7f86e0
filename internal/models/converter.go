package models

// ParamSpec describes one extra named numeric input a parameterized converter
// needs beyond value and unit pair. It is read-only configuration: the host
// renders an input field from it and supplies the value fresh on each call.
type ParamSpec struct {
	Label    string // display label, e.g. "Voltage (V)"
	Default  string // default value as entered text, e.g. "3.7"
	Required bool
}

// RateTable maps a currency code to its exchange rate against the base
// currency, expressed as "1 base unit = rate target units".
type RateTable map[string]float64
