package core

import (
	"math"
	"strconv"
)

// Options wraps a flag-style key/value map handed to scene factories.
// Each accessor writes dst only when the key is present and parses cleanly.
type Options map[string]string

// Int parses key as an integer.
func (o Options) Int(key string, dst *int) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}

// Int64 parses key as a 64-bit integer.
func (o Options) Int64(key string, dst *int64) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}

// Float parses key as a finite float.
func (o Options) Float(key string, dst *float64) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return false
	}
	*dst = parsed
	return true
}

// Bool parses key as a boolean.
func (o Options) Bool(key string, dst *bool) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	*dst = parsed
	return true
}
