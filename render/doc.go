// Package render draws a gridgraph.Grid for people: as colored terminal
// blocks through lipgloss, or as a Graphviz document that can be turned
// into SVG.
//
// Every renderer maps a cell's State to a color through one palette
// (Hex / Color). The mapping only goes that way; nothing reads a state
// back from a color.
//
//	Empty   white        Barrier black
//	Open    green        Closed  red
//	Start   orange       End     turquoise
//	Path    purple       grid lines grey
//
// Graphviz output pins every cell at its pixel position and asks for the
// neato engine, so the document draws the grid as-is instead of laying it
// out as a graph.
package render
