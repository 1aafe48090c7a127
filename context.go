package glworks

import "unicode/utf8"

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Message boxes, drawn on top

	// Input (read-only during frame)
	Input *InputState

	// Frame info
	DisplaySize Vec2
	DeltaTime   float32
	FrameCount  uint64

	// Font
	FontTextureID uint32
	atlas         *FontAtlas

	style  Style
	cursor Vec2

	idCounter int
	idStack   []ID

	// activeID is the button armed by a press; it fires on release over it.
	activeID ID

	// A message box drawn last frame blocks every widget outside it.
	modalThisFrame bool
	modalActive    bool
	inModal        bool
}

// NewContext creates a new GUI context with the built-in font atlas.
func NewContext() *Context {
	return &Context{
		style:   DefaultStyle(),
		atlas:   NewFontAtlas(),
		idStack: make([]ID, 0, 8),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle replaces the current style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Atlas returns the font atlas used for text.
func (ctx *Context) Atlas() *FontAtlas {
	return ctx.atlas
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.FrameCount++
	ctx.cursor = Vec2{X: ctx.style.WindowPadding, Y: ctx.style.WindowPadding}
	ctx.idCounter = 0
	ctx.idStack = ctx.idStack[:0]

	ctx.modalActive = ctx.modalThisFrame
	ctx.modalThisFrame = false
	ctx.inModal = false

	if ctx.Input != nil && !ctx.Input.MouseDown(MouseButtonLeft) && !ctx.Input.MouseReleased(MouseButtonLeft) {
		ctx.activeID = 0
	}
}

// inputBlocked reports whether a message box owns the input this frame.
func (ctx *Context) inputBlocked() bool {
	return ctx.modalActive && !ctx.inModal
}

// isHovered returns true if the rect is under the mouse cursor.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil || ctx.inputBlocked() {
		return false
	}
	return rect.Contains(ctx.Input.MousePos())
}

// IsHovered returns true if the rect is under the mouse cursor (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// buttonBehavior implements push-button semantics: a press over the rect arms
// the widget, and releasing over it fires. Releasing elsewhere cancels.
func (ctx *Context) buttonBehavior(id ID, rect Rect) (hovered, held, clicked bool) {
	hovered = ctx.isHovered(rect)
	if ctx.Input == nil || ctx.inputBlocked() {
		return hovered, false, false
	}

	if hovered && ctx.Input.MouseClicked(MouseButtonLeft) {
		ctx.activeID = id
	}

	if ctx.activeID == id {
		if ctx.Input.MouseReleased(MouseButtonLeft) {
			clicked = hovered
			ctx.activeID = 0
		} else {
			held = ctx.Input.MouseDown(MouseButtonLeft)
		}
	}

	if clicked && Verbose() {
		Logger.Debug("button clicked", "id", id, "rect", rect, "mouse", ctx.Input.MousePos())
	}
	return hovered, held, clicked
}

// SetCursorPos moves the layout cursor.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = Vec2{X: x, Y: y}
}

// GetCursorPos returns the layout cursor.
func (ctx *Context) GetCursorPos() Vec2 {
	return ctx.cursor
}

// LineHeight returns the height of one line of text.
func (ctx *Context) LineHeight() float32 {
	return float32(ctx.atlas.CellH) * ctx.style.FontScale
}

// MeasureText returns the pixel size of a single line of text.
func (ctx *Context) MeasureText(text string) Vec2 {
	n := utf8.RuneCountInString(text)
	return Vec2{
		X: float32(n*ctx.atlas.CellW) * ctx.style.FontScale,
		Y: ctx.LineHeight(),
	}
}

// AddText draws text at an absolute position.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.DrawList.SetTexture(ctx.FontTextureID)
	ctx.DrawList.AddText(x, y, text, color, ctx.style.FontScale, ctx.atlas)
	ctx.DrawList.SetTexture(0)
}

// advanceCursor moves the cursor below an item of the given size.
func (ctx *Context) advanceCursor(size Vec2) {
	ctx.cursor.Y += size.Y + ctx.style.ItemSpacing
}
