// Package dataset supplies named graphs to the replay: the two reference
// graphs the visualization ships with, a handful of generated ones and any
// graphs loaded from a YAML or JSON catalog file.
//
// A Catalog keeps registration order, which is the order shown in pickers
// and listings. Catalog files are validated against an embedded JSON Schema
// before any graph is built:
//
//	graphs:
//	  - name: triangle
//	    description: Three nodes
//	    start: A
//	    nodes: [{id: A, x: 100, y: 100}, {id: B, x: 200, y: 100}, {id: C, x: 150, y: 180}]
//	    edges:
//	      - {source: A, target: B, weight: 1}
//	      - {source: B, target: C, weight: 2}
package dataset
