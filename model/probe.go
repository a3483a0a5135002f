package model

import "strings"

// The backend has historically served the same entities with two JSON
// casings: PascalCase (ORM struct defaults) and snake_case (hand-written
// endpoints), sometimes with user fields nested one level under a
// Profile/profile object. Normalization reconciles those shapes at one
// seam. Each field is resolved by probing a fixed, ordered list of keys
// and taking the first defined value; the canonical snake_case name is
// always part of the list so normalizing an already-normalized payload
// is a no-op.

// probeString returns the first non-empty string found under keys, in order.
func probeString(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// probeBool returns the first boolean found under keys, in order.
// The second return reports whether any key held a boolean at all.
func probeBool(raw map[string]any, keys ...string) (bool, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if b, ok := v.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// probeFloat returns the first numeric value found under keys, in order.
// JSON numbers decode as float64; integers stored by older endpoints are
// accepted too.
func probeFloat(raw map[string]any, keys ...string) (float64, bool) {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		case int64:
			return float64(n), true
		}
	}
	return 0, false
}

// probeMap returns the first nested object found under keys, in order.
func probeMap(raw map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		if m, ok := v.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// probeProfileString resolves a user field that may live at the top level
// or nested under Profile/profile, in either casing. Top-level values win
// so re-normalization stays stable.
func probeProfileString(raw map[string]any, pascal, snake string) string {
	if s := probeString(raw, pascal, snake); s != "" {
		return s
	}
	profile := probeMap(raw, "Profile", "profile")
	if profile == nil {
		return ""
	}
	return probeString(profile, pascal, snake)
}

// normalizeToken trims and lowercases an enum-ish string value.
func normalizeToken(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
