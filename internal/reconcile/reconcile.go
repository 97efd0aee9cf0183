// Package reconcile computes common and per-locale-unique key sets across
// loaded locale tables.
package reconcile

import (
	"errors"

	"localiser/internal/locales"
)

// ErrNoLocales signals that a key-set operation was attempted on an empty
// locale set. The intersection of zero sets is undefined, so callers must
// guard against empty input.
var ErrNoLocales = errors.New("no locale tables loaded")

// Common returns the keys present in every table of the set, iterated in the
// first table's key order. No sorting is applied anywhere in this package;
// order is the insertion order of the source JSON objects.
func Common(set locales.Set) ([]string, error) {
	codes := set.Codes()
	if len(codes) == 0 {
		return nil, ErrNoLocales
	}

	first, _ := set.Table(codes[0])
	common := make([]string, 0, first.Len())

	for _, key := range first.Keys() {
		everywhere := true
		for _, code := range codes[1:] {
			table, _ := set.Table(code)
			if !table.Has(key) {
				everywhere = false
				break
			}
		}
		if everywhere {
			common = append(common, key)
		}
	}

	return common, nil
}

// Unique returns the keys present in the given locale's table but absent from
// every other table, in that table's key order.
func Unique(set locales.Set, locale string) []string {
	table, ok := set.Table(locale)
	if !ok {
		return nil
	}

	unique := make([]string, 0, table.Len())
	for _, key := range table.Keys() {
		elsewhere := false
		for _, code := range set.Codes() {
			if code == locale {
				continue
			}
			other, _ := set.Table(code)
			if other.Has(key) {
				elsewhere = true
				break
			}
		}
		if !elsewhere {
			unique = append(unique, key)
		}
	}

	return unique
}
