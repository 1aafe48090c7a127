package glworks

// Spacing constants for consistent layout.
const (
	SpaceSM float32 = 4 // Default item spacing
	SpaceMD float32 = 8 // Default padding
)

// Style defines the visual appearance of UI elements.
type Style struct {
	// Window
	WindowBgColor uint32 // Cleared behind every frame by the demos

	// Text
	TextColor uint32

	// Buttons
	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32
	ButtonBorderColor  uint32
	ButtonTextColor    uint32

	// Message box overlay
	DimColor         uint32 // Drawn over the whole window behind the box
	DialogColor      uint32
	DialogTitleColor uint32
	DialogTitleText  uint32

	// Sizing
	FontScale     float32
	ItemSpacing   float32
	WindowPadding float32
	ButtonPadding float32
	BorderSize    float32
}

// DefaultStyle returns a dark style.
func DefaultStyle() Style {
	return Style{
		WindowBgColor: RGBA(31, 31, 36, 255),

		TextColor: ColorWhite,

		ButtonColor:        RGBA(50, 50, 50, 255),
		ButtonHoveredColor: RGBA(70, 70, 70, 255),
		ButtonActiveColor:  RGBA(90, 90, 90, 255),
		ButtonBorderColor:  RGBA(110, 110, 110, 255),
		ButtonTextColor:    ColorWhite,

		DimColor:         RGBA(0, 0, 0, 120),
		DialogColor:      RGBA(40, 40, 45, 255),
		DialogTitleColor: RGBA(60, 60, 90, 255),
		DialogTitleText:  ColorWhite,

		FontScale:     1,
		ItemSpacing:   SpaceSM,
		WindowPadding: SpaceMD,
		ButtonPadding: SpaceMD,
		BorderSize:    1,
	}
}

// ClassicStyle looks like a stock dialog: white client area, black text,
// light gray push buttons.
func ClassicStyle() Style {
	s := DefaultStyle()
	s.WindowBgColor = ColorWhite
	s.TextColor = ColorBlack
	s.ButtonColor = RGBA(225, 225, 225, 255)
	s.ButtonHoveredColor = RGBA(229, 241, 251, 255)
	s.ButtonActiveColor = RGBA(204, 228, 247, 255)
	s.ButtonBorderColor = RGBA(0, 120, 215, 255)
	s.ButtonTextColor = ColorBlack
	s.DimColor = RGBA(0, 0, 0, 60)
	s.DialogColor = RGBA(240, 240, 240, 255)
	s.DialogTitleColor = ColorWhite
	s.DialogTitleText = ColorBlack
	return s
}
