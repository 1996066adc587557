/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package brand

import "bennypowers.dev/brandmap/stylesheet"

// Top-level categories.
const (
	Components       = "components"
	ComponentClasses = "componentClasses"
)

// Visual properties.
const (
	backgroundColor = "backgroundColor"
	textColor       = "textColor"
	borderColor     = "borderColor"
	indicatorColor  = "indicatorColor"
	borderRadius    = "borderRadius"
)

func mapButtons(w *Writer) {
	w.states([]state{
		{"hover", []field{{backgroundColor, "popover"}, {textColor, "popoverForeground"}}},
		{"defaults", []field{{backgroundColor, "primary"}, {textColor, "primaryForeground"}}},
		{"active", []field{{backgroundColor, "primary"}, {textColor, "primaryForeground"}}},
		{"disabled", []field{{backgroundColor, "muted"}, {borderColor, "border"}}},
	}, Components, "primaryButton")

	w.states([]state{
		{"hover", []field{{backgroundColor, "popover"}, {borderColor, "border"}, {textColor, "popoverForeground"}}},
		{"defaults", []field{{backgroundColor, "secondary"}, {borderColor, "border"}, {textColor, "secondaryForeground"}}},
		{"active", []field{{backgroundColor, "secondary"}, {borderColor, "border"}, {textColor, "secondaryForeground"}}},
	}, Components, "secondaryButton")

	w.Copy(stylesheet.Light, "radius", ComponentClasses, "buttons", borderRadius)
}

func mapDivider(w *Writer) {
	w.modes([]field{{borderColor, "border"}}, ComponentClasses, "divider")
}

func mapFocusRing(w *Writer) {
	w.modes([]field{{borderColor, "ring"}}, ComponentClasses, "focusState")
}

func mapForm(w *Writer) {
	w.modes([]field{{backgroundColor, "card"}, {borderColor, "border"}}, Components, "form")
	w.Copy(stylesheet.Light, "radius", Components, "form", borderRadius)
}

func mapStatusIndicator(w *Writer) {
	w.Copy(stylesheet.Light, "radius", Components, "alert", borderRadius)
	w.states([]state{
		{"success", []field{{backgroundColor, "success"}, {borderColor, "success"}, {indicatorColor, "success"}}},
		{"pending", []field{{indicatorColor, "pending"}}},
		{"error", []field{{backgroundColor, "danger"}, {borderColor, "danger"}, {indicatorColor, "danger"}}},
	}, ComponentClasses, "statusIndicator")
}
