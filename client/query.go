package client

import (
	"net/url"
	"strconv"
)

// params builds a query string, appending a key only when its value is
// actually set. Unset filters are never sent as empty strings.
type params struct {
	values url.Values
}

func newParams() *params {
	return &params{values: url.Values{}}
}

// Int appends key when v is positive.
func (p *params) Int(key string, v int) *params {
	if v > 0 {
		p.values.Set(key, strconv.Itoa(v))
	}
	return p
}

// Str appends key when v is non-nil and non-empty.
func (p *params) Str(key string, v *string) *params {
	if v != nil && *v != "" {
		p.values.Set(key, *v)
	}
	return p
}

// StrVal appends key when v is non-empty.
func (p *params) StrVal(key, v string) *params {
	if v != "" {
		p.values.Set(key, v)
	}
	return p
}

// Bool appends key=true only when v is set.
func (p *params) Bool(key string, v bool) *params {
	if v {
		p.values.Set(key, "true")
	}
	return p
}

// encode returns "?k=v..." or "" when nothing was appended.
func (p *params) encode() string {
	if len(p.values) == 0 {
		return ""
	}
	return "?" + p.values.Encode()
}
