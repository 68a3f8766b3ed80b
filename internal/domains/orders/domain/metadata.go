package domain

// Metadata keys read from orders and items. "comission" keeps the CMS spelling.
const (
	MetaPaymentID      = "paymentId"
	MetaCommission     = "comission"
	MetaERPNumber      = "erpNumber"
	MetaERPOrderID     = "erpOrderId"
	MetaActivationDate = "activationDate"
)

// MetadataEntry is a loosely typed key/value pair attached to a CMS record.
type MetadataEntry struct {
	Key   string
	Type  string
	Value string
}

// Metadata keeps entries in CMS order.
type Metadata []MetadataEntry

// Lookup returns the value of the first entry with key, or "".
func (m Metadata) Lookup(key string) string {
	for _, e := range m {
		if e.Key == key {
			return e.Value
		}
	}
	return ""
}

// All returns every value stored under key, in sequence order.
func (m Metadata) All(key string) []string {
	var out []string
	for _, e := range m {
		if e.Key == key {
			out = append(out, e.Value)
		}
	}
	return out
}
