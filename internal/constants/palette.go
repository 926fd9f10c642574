package constants

// Palette is the fixed set of course colors, in auto-assignment order.
var Palette = []string{
	"red", "orange", "amber", "green", "emerald", "teal", "cyan",
	"blue", "indigo", "violet", "purple", "fuchsia", "pink", "rose",
}

// PaletteHex maps a palette name to the hex color used for rendering.
var PaletteHex = map[string]string{
	"red":     "#ef4444",
	"orange":  "#f97316",
	"amber":   "#f59e0b",
	"green":   "#22c55e",
	"emerald": "#10b981",
	"teal":    "#14b8a6",
	"cyan":    "#06b6d4",
	"blue":    "#3b82f6",
	"indigo":  "#6366f1",
	"violet":  "#8b5cf6",
	"purple":  "#a855f7",
	"fuchsia": "#d946ef",
	"pink":    "#ec4899",
	"rose":    "#f43f5e",
}

// IsPaletteColor reports whether name is a member of the fixed palette.
func IsPaletteColor(name string) bool {
	_, ok := PaletteHex[name]
	return ok
}
