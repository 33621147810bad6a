package ui

import (
	"fyne.io/fyne/v2"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newButtonWithTooltip creates a button that shows tip on hover. The window
// content must be wrapped with fynetooltip.AddWindowToolTipLayer.
func newButtonWithTooltip(label string, icon fyne.Resource, tip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon(label, icon, tapped)
	btn.SetToolTip(tip)
	return btn
}
