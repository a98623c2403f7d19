package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// GridLine is the color of the lines between cells.
const GridLine = "#808080"

var stateHex = [...]string{
	gridgraph.Empty:   "#ffffff",
	gridgraph.Open:    "#00ff00",
	gridgraph.Closed:  "#ff0000",
	gridgraph.Barrier: "#000000",
	gridgraph.Start:   "#ffa500",
	gridgraph.End:     "#40e0d0",
	gridgraph.Path:    "#800080",
}

// Hex returns the "#rrggbb" color for s. Unknown states render as grid
// lines do.
func Hex(s gridgraph.State) string {
	if int(s) < len(stateHex) {
		return stateHex[s]
	}
	return GridLine
}

// Color returns the lipgloss color for s.
func Color(s gridgraph.State) lipgloss.Color {
	return lipgloss.Color(Hex(s))
}
