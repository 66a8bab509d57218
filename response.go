// Package gopaypal parses responses from PayPal's NVP (name-value-pair)
// API into read-only, dictionary-like structures.
package gopaypal

import (
	"errors"
	"log/slog"
	"net/url"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// pretty-printer for Response renderings; SortKeys keeps the output
// deterministic across calls
var dumper = spew.ConfigState{Indent: "  ", SortKeys: true, DisableMethods: true}

// Response is a parsed NVP API response. It acts as a read-only
// dictionary that does the following:
//
//   - Supports getting keys by upper or lower case (the raw response is all
//     upper case).
//   - Turns single-item values in the parsed response into scalars (in the
//     raw response, all values are sequences).
//   - Provides field access by the name a call site expects, with not-found
//     errors that carry that exact name.
//
// A Response never changes after construction and is safe for concurrent
// reads.
type Response struct {
	// raw maps uppercased field names to their decoded values. Don't read
	// this directly, use Response.Get or Response.GetField.
	raw   map[string][]string
	order []string

	codes  SuccessCodes
	logger Logger
}

// ResponseOption configures a Response at construction time.
type ResponseOption func(*Response)

// WithLogger sets the diagnostic logger (silent by default)
func WithLogger(logger Logger) ResponseOption {
	return func(r *Response) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewResponse parses queryString, the raw body returned by the NVP API
// server, into a Response. codes supplies the ACK tokens that count as
// success; nil falls back to NewConfig().
//
// Decoding never fails: malformed input degrades to a partial or empty
// mapping. Missing expected fields surface later, at lookup time.
func NewResponse(queryString string, codes SuccessCodes, opts ...ResponseOption) *Response {
	if codes == nil {
		codes = NewConfig()
	}

	r := &Response{
		codes:  codes,
		logger: NoOpLogger{},
	}
	r.raw, r.order = parseNVP(queryString)

	for _, opt := range opts {
		opt(r)
	}

	r.logger.Debug("PayPal NVP API response", "response", r.String())
	return r
}

// NewResponseWithSlog parses queryString logging through slog
func NewResponseWithSlog(queryString string, codes SuccessCodes, slogger *slog.Logger) *Response {
	return NewResponse(queryString, codes, WithLogger(NewSlogAdapter(slogger)))
}

// parseNVP decodes a form-encoded query string into a field map plus the
// field names in first-seen order. Keys are uppercased, repeated keys
// accumulate in decoding order, pairs without '=' or with an empty value
// are dropped, and a token with a broken percent-escape is kept as-is.
func parseNVP(queryString string) (map[string][]string, []string) {
	raw := make(map[string][]string)
	var order []string

	for _, pair := range strings.Split(queryString, "&") {
		if pair == "" {
			continue
		}

		parts := strings.SplitN(pair, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := parts[0]
		if decoded, err := url.QueryUnescape(key); err == nil {
			key = decoded
		}
		value := parts[1]
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}

		if key == "" || value == "" {
			continue
		}

		// PayPal response names are always uppercase.
		key = strings.ToUpper(key)
		if _, exists := raw[key]; !exists {
			order = append(order, key)
		}
		raw[key] = append(raw[key], value)
	}

	return raw, order
}

// Get returns the value of a response field, looked up case-insensitively.
// A field with a single value comes back as a bare string; a field the
// server repeated comes back as a []string in decoding order. An absent
// field yields a *FieldNotFoundError carrying key as given.
func (r *Response) Get(key string) (any, error) {
	values, exists := r.raw[strings.ToUpper(key)]
	if !exists {
		return nil, NewFieldNotFoundError(key)
	}

	if len(values) == 1 {
		// PayPal returns sequences for all of its values; the single-value
		// case is by far the common one, so collapse it for the caller.
		return values[0], nil
	}

	result := make([]string, len(values))
	copy(result, values)
	return result, nil
}

// GetField is Get for call sites that expect a particular named field. It
// behaves identically, except that the not-found error carries name exactly
// as given here, which helps when a chain of lookups narrows down which
// optional field was missing.
func (r *Response) GetField(name string) (any, error) {
	value, err := r.Get(name)
	if err != nil {
		var notFound *FieldNotFoundError
		if errors.As(err, &notFound) {
			return nil, NewFieldNotFoundError(name)
		}
		return nil, err
	}
	return value, nil
}

// GetDefault returns the field's value, or def when the field is absent.
func (r *Response) GetDefault(key string, def any) any {
	value, err := r.Get(key)
	if err != nil {
		return def
	}
	return value
}

// Has reports whether the response contains the field, case-insensitively.
func (r *Response) Has(key string) bool {
	_, exists := r.raw[strings.ToUpper(key)]
	return exists
}

// Keys returns the field names present in the response, in decoding order.
func (r *Response) Keys() []string {
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Len returns the number of distinct field names in the response.
func (r *Response) Len() int {
	return len(r.raw)
}

// String returns a pretty-printed rendering of the response with the
// scalar-collapsing rule applied to every field. The output is
// deterministic, so it is safe to diff across log lines.
func (r *Response) String() string {
	collapsed := make(map[string]any, len(r.raw))
	for key := range r.raw {
		value, err := r.Get(key)
		if err != nil {
			continue
		}
		collapsed[key] = value
	}
	return dumper.Sdump(collapsed)
}

// Formatted is an alias for String kept for callers that prefer an
// explicitly named rendering over the Stringer.
func (r *Response) Formatted() string {
	return r.String()
}

// Success reports whether PayPal says the call went through. It is true
// when the response's ACK field, uppercased, matches either of the
// configured success tokens; any other present value means false.
//
// A response with no ACK field at all is structurally incomplete rather
// than unsuccessful, so the *FieldNotFoundError from the lookup propagates
// instead of being folded into false.
func (r *Response) Success() (bool, error) {
	ack, err := r.GetField("ACK")
	if err != nil {
		return false, err
	}

	scalar, ok := ack.(string)
	if !ok {
		return false, nil
	}

	status := strings.ToUpper(scalar)
	return status == r.codes.SuccessAck() || status == r.codes.SuccessWithWarningAck(), nil
}
