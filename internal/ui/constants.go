// Package ui provides shared layout constants.
package ui

// Layout constants for the two-pane screen.
const (
	// ScrollMargin is the number of items kept visible above/below the cursor.
	ScrollMargin = 2

	// BorderHeight is the vertical space consumed by a panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a panel border.
	BorderWidth = 2

	// GaugeHeight is the height of the bordered progress gauge.
	GaugeHeight = 3

	// FooterHeight is the height of the error/help line.
	FooterHeight = 1

	// MinGaugeBarWidth is the narrowest bar worth drawing next to the times.
	MinGaugeBarWidth = 5
)
