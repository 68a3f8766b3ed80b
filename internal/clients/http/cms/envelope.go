package cms

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Apurer/shop-admin/internal/shared/pagination"
)

// Entity is a CMS record: numeric id plus its attribute bag.
type Entity[T any] struct {
	ID         int64 `json:"id"`
	Attributes T     `json:"attributes"`
}

// Relation is a populated to-one relation; Data is nil when the relation is empty.
type Relation[T any] struct {
	Data *Entity[T] `json:"data"`
}

// Get returns the related entity when present. Safe on a nil receiver.
func (r *Relation[T]) Get() (Entity[T], bool) {
	if r == nil || r.Data == nil {
		var zero Entity[T]
		return zero, false
	}
	return *r.Data, true
}

// RelationList is a populated to-many relation.
type RelationList[T any] struct {
	Data []Entity[T] `json:"data"`
}

// All returns the related entities; nil-safe.
func (r *RelationList[T]) All() []Entity[T] {
	if r == nil {
		return nil
	}
	return r.Data
}

// Collection is the envelope returned by list endpoints.
type Collection[T any] struct {
	Data []Entity[T] `json:"data"`
	Meta Meta        `json:"meta"`
}

// Single is the envelope returned by find-one, create and update endpoints.
type Single[T any] struct {
	Data *Entity[T] `json:"data"`
}

// Meta carries list metadata.
type Meta struct {
	Pagination pagination.Meta `json:"pagination"`
}

// Payload wraps a write body the way the CMS expects it.
type Payload[T any] struct {
	Data T `json:"data"`
}

// MediaAttributes describes an uploaded file.
type MediaAttributes struct {
	Name            string `json:"name"`
	AlternativeText string `json:"alternativeText"`
	URL             string `json:"url"`
	Mime            string `json:"mime"`
	Width           int    `json:"width"`
	Height          int    `json:"height"`
}

// MediaURL returns the url of a single media relation or "" when absent.
func MediaURL(m *Relation[MediaAttributes]) string {
	if e, ok := m.Get(); ok {
		return e.Attributes.URL
	}
	return ""
}

// MediaURLs returns the urls of a media list, skipping blanks.
func MediaURLs(m *RelationList[MediaAttributes]) []string {
	out := []string{}
	for _, e := range m.All() {
		if e.Attributes.URL != "" {
			out = append(out, e.Attributes.URL)
		}
	}
	return out
}

// FlexString decodes a JSON string, number, or boolean into its string form.
// The CMS stores loosely typed values (metadata, decimal columns) either way.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	if bytes.Equal(b, []byte("true")) || bytes.Equal(b, []byte("false")) {
		*f = FlexString(b)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		// objects and arrays keep their raw JSON text
		*f = FlexString(b)
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// String returns the decoded value.
func (f FlexString) String() string { return string(f) }

// Int64 parses the value, returning 0 when it is not an integer.
func (f FlexString) Int64() int64 {
	n, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Decimal parses the value as a decimal amount; blanks and garbage become zero.
// A comma is accepted as the decimal separator.
func (f FlexString) Decimal() decimal.Decimal {
	raw := strings.TrimSpace(string(f))
	if raw == "" {
		return decimal.Zero
	}
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return d
}
