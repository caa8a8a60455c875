package services

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// RatingSummaries maps product IDs to their aggregates and marshals to a JSON
// object whose keys keep insertion order.
type RatingSummaries struct {
	keys   []int64
	values map[int64]RatingSummary
}

func (m *RatingSummaries) Set(productID int64, summary RatingSummary) {
	if m.values == nil {
		m.values = make(map[int64]RatingSummary)
	}
	if _, ok := m.values[productID]; !ok {
		m.keys = append(m.keys, productID)
	}
	m.values[productID] = summary
}

func (m RatingSummaries) Get(productID int64) (RatingSummary, bool) {
	summary, ok := m.values[productID]
	return summary, ok
}

func (m RatingSummaries) Keys() []int64 {
	return append([]int64(nil), m.keys...)
}

func (m RatingSummaries) Len() int {
	return len(m.keys)
}

func (m RatingSummaries) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(strconv.FormatInt(id, 10)))
		buf.WriteByte(':')

		value, err := json.Marshal(m.values[id])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
