package chapa

import (
	"bytes"
	"encoding/json"
)

// Status values observed from the Chapa API. The remote service is not
// perfectly consistent; branch on data presence, not on these strings alone.
const (
	StatusSuccess     = "success"
	StatusFailed      = "failed"
	StatusUnspecified = "Unspecified"
)

// Message holds the envelope's message field without assuming a shape. Chapa
// returns a plain string on most paths, but validation failures arrive as an
// object of field-name to message-list, and some paths return arrays.
type Message struct {
	raw json.RawMessage
}

func (m *Message) UnmarshalJSON(b []byte) error {
	m.raw = append(m.raw[:0], b...)
	return nil
}

func (m Message) MarshalJSON() ([]byte, error) {
	if len(m.raw) == 0 {
		return []byte("null"), nil
	}
	return m.raw, nil
}

// IsNull reports whether the field was absent or JSON null.
func (m Message) IsNull() bool {
	return len(m.raw) == 0 || string(m.raw) == "null"
}

// Raw exposes the undecoded JSON value.
func (m Message) Raw() json.RawMessage {
	return m.raw
}

// String returns a display-friendly rendering: the unquoted string when the
// message is a JSON string, the compact JSON text otherwise, "" when null.
func (m Message) String() string {
	if m.IsNull() {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.raw, &s); err == nil {
		return s
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, m.raw); err != nil {
		return string(m.raw)
	}
	return buf.String()
}

// Envelope is the generic success/failure wrapper every Chapa endpoint
// returns. Data is nil when the field is missing or null, which is how
// failure bodies and success bodies share one type. Status defaults to
// StatusUnspecified when the remote omits it.
type Envelope[T any] struct {
	Message Message `json:"message"`
	Status  string  `json:"status"`
	Data    *T      `json:"data"`
}

func (e *Envelope[T]) UnmarshalJSON(b []byte) error {
	type plain Envelope[T]
	p := plain{Status: StatusUnspecified}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = Envelope[T](p)
	return nil
}

// HasData reports whether the remote returned a data payload. This is the
// authoritative success signal; the status string correlates with it but is
// not guaranteed to.
func (e *Envelope[T]) HasData() bool {
	return e != nil && e.Data != nil
}

// EnvelopeWithMeta is Envelope plus the pagination meta block that list-style
// endpoints return. Meta tolerates absence the same way Data does.
type EnvelopeWithMeta[T, M any] struct {
	Message Message `json:"message"`
	Status  string  `json:"status"`
	Data    *T      `json:"data"`
	Meta    *M      `json:"meta"`
}

func (e *EnvelopeWithMeta[T, M]) UnmarshalJSON(b []byte) error {
	type plain EnvelopeWithMeta[T, M]
	p := plain{Status: StatusUnspecified}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*e = EnvelopeWithMeta[T, M](p)
	return nil
}

func (e *EnvelopeWithMeta[T, M]) HasData() bool {
	return e != nil && e.Data != nil
}

func (e *EnvelopeWithMeta[T, M]) HasMeta() bool {
	return e != nil && e.Meta != nil
}

// ListMeta is the pagination block on paginated transfer listings.
type ListMeta struct {
	CurrentPage  int             `json:"current_page"`
	FirstPageURL string          `json:"first_page_url"`
	LastPage     int             `json:"last_page"`
	LastPageURL  string          `json:"last_page_url"`
	NextPageURL  *string         `json:"next_page_url"`
	Path         string          `json:"path"`
	PerPage      int             `json:"per_page"`
	PrevPageURL  *string         `json:"prev_page_url"`
	To           int             `json:"to"`
	Total        int             `json:"total"`
	Error        json.RawMessage `json:"error"`
}
