package custom

import (
	"sort"
	"strings"
)

// maxDepth bounds the walk so pathological or cyclic-looking documents
// cannot blow the stack.
const maxDepth = 64

// Candidate is a price found somewhere in a free-form provider response,
// with a booking link when one sat in the same object.
type Candidate struct {
	Price       float64
	BookingLink string
}

// Extract walks a decoded JSON value and collects every object carrying a
// numeric price-like field. This is a best-effort heuristic for providers
// with unknown response shapes: any field named price/total/amount matches,
// so results may include values that are not fares at all. Candidates come
// back sorted ascending by price, ties in encounter order.
func Extract(value interface{}) []Candidate {
	var candidates []Candidate

	walk(value, 0, &candidates)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Price < candidates[j].Price
	})

	return candidates
}

func walk(value interface{}, depth int, out *[]Candidate) {
	if depth > maxDepth {
		return
	}

	switch v := value.(type) {
	case map[string]interface{}:
		visitObject(v, depth, out)
	case []interface{}:
		for _, item := range v {
			walk(item, depth+1, out)
		}
	}
}

// visitObject inspects one object for a price field and a nearby booking
// link, then recurses into its values. Keys are visited in sorted order so
// encounter order is deterministic.
func visitObject(obj map[string]interface{}, depth int, out *[]Candidate) {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var (
		price      float64
		priceFound bool
		link       string
	)

	for _, key := range keys {
		value := obj[key]

		if number, ok := value.(float64); ok && !priceFound && isPriceKey(key) {
			price = number
			priceFound = true
		}

		if text, ok := value.(string); ok && link == "" && isBookingLink(text) {
			link = text
		}
	}

	if priceFound {
		*out = append(*out, Candidate{Price: price, BookingLink: link})
	}

	for _, key := range keys {
		walk(obj[key], depth+1, out)
	}
}

func isPriceKey(key string) bool {
	switch strings.ToLower(key) {
	case "price", "total", "amount":
		return true
	default:
		return false
	}
}

func isBookingLink(value string) bool {
	if !strings.HasPrefix(value, "http") {
		return false
	}

	return strings.Contains(value, "book") ||
		strings.Contains(value, "purchase") ||
		strings.Contains(value, "pay")
}
