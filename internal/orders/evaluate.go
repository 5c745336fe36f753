package orders

import "sort"

// Evaluate compares requested quantities against what the inventory service
// reported. An empty result means the order is accepted; exact equality
// passes. A requested SKU the inventory service did not report counts as zero
// stock, never as a pass-through.
func Evaluate(requested, available map[string]int) []OutOfStockItem {
	var out []OutOfStockItem
	for sku, want := range requested {
		have := available[sku]
		if have < want {
			out = append(out, OutOfStockItem{SkuCode: sku, Requested: want, Available: have})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SkuCode < out[j].SkuCode })
	return out
}
