// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package cursor

import "github.com/creachadair/jtok"

// Walk visits v and its descendants depth-first in source order, calling f
// for each node. A property is visited before its name and value. If f
// returns false, the children of that node are not visited.
func Walk(v jtok.Value, f func(Node) bool) {
	if v == nil || !f(v) {
		return
	}
	switch t := v.(type) {
	case *jtok.Array:
		for _, item := range t.Items {
			Walk(item, f)
		}
	case *jtok.Object:
		for _, p := range t.Properties {
			if f(p) {
				Walk(p.Name, f)
				Walk(p.Value, f)
			}
		}
	}
}
