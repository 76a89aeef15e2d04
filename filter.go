package chanwire

import "github.com/tidwall/gjson"

// FilterFunc is a predicate for gating delivery per payload.
// Return true to deliver, false to skip.
type FilterFunc func(payload any) bool

// FilterJSON creates a filter that matches JSON payloads whose value at the
// given gjson path equals want. Payloads that are not string, []byte, or
// json-encodable raw bytes are rejected.
//
//	e.Subscribe("orders", handle, chanwire.WithFilter(
//	    chanwire.FilterJSON("status", "shipped"),
//	))
func FilterJSON(path, want string) FilterFunc {
	return func(payload any) bool {
		var doc string
		switch v := payload.(type) {
		case string:
			doc = v
		case []byte:
			doc = string(v)
		default:
			return false
		}
		return gjson.Get(doc, path).String() == want
	}
}

// FilterAnd combines multiple filters with AND logic.
// All filters must pass for the payload to be delivered.
func FilterAnd(filters ...FilterFunc) FilterFunc {
	return func(payload any) bool {
		for _, f := range filters {
			if !f(payload) {
				return false
			}
		}
		return true
	}
}

// FilterOr combines multiple filters with OR logic.
// At least one filter must pass for the payload to be delivered.
func FilterOr(filters ...FilterFunc) FilterFunc {
	return func(payload any) bool {
		for _, f := range filters {
			if f(payload) {
				return true
			}
		}
		return false
	}
}

// FilterNot negates a filter.
func FilterNot(filter FilterFunc) FilterFunc {
	return func(payload any) bool {
		return !filter(payload)
	}
}
