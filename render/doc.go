// Package render turns a replay Frame into text: a character-cell drawing
// of the graph, the heap panel, the progress bar and the step summary.
//
// Every cell of a Canvas carries a Class so that a terminal front end can
// color it, while Canvas.String gives a plain rendition for logs and pipes.
//
// Precedence follows the visualization: the current edge wins over tree
// edges, tree edges over idle ones, and nodes are drawn last.
package render
