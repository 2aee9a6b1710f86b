//go:build unit || e2e

package testutil

import "strings"

// Field sets or, with a nil value, deletes a field. Dotted keys such as
// "context.buyer.phone" reach into nested objects, creating them as needed.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		path := strings.Split(key, ".")
		for _, p := range path[:len(path)-1] {
			next, ok := m[p].(map[string]any)
			if !ok {
				if value == nil {
					return
				}
				next = map[string]any{}
				m[p] = next
			}
			m = next
		}
		last := path[len(path)-1]
		if value == nil {
			delete(m, last)
		} else {
			m[last] = value
		}
	}
}
