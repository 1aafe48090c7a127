package glworks

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	pos := ctx.cursor
	ctx.AddText(pos.X, pos.Y, text, ctx.style.TextColor)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.cursor
	ctx.AddText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(ctx.MeasureText(text))
}

// TextCentered draws a single line centered in rect.
// The layout cursor does not move.
func (ctx *Context) TextCentered(rect Rect, text string) {
	size := ctx.MeasureText(text)
	c := rect.Center()
	ctx.AddText(c.X-size.X/2, c.Y-size.Y/2, text, ctx.style.TextColor)
}

// Label draws static text at the top-left of rect.
// The layout cursor does not move.
func (ctx *Context) Label(rect Rect, text string) {
	ctx.DrawList.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	ctx.AddText(rect.X, rect.Y, text, ctx.style.TextColor)
	ctx.DrawList.PopClipRect()
}

// Button draws a button sized to its label at the cursor.
// Returns true on the frame the button is clicked.
func (ctx *Context) Button(label string) bool {
	size := ctx.MeasureText(label)
	pad := ctx.style.ButtonPadding
	rect := Rect{X: ctx.cursor.X, Y: ctx.cursor.Y, W: size.X + pad*2, H: size.Y + pad}
	clicked := ctx.ButtonAt(label, rect)
	ctx.advanceCursor(Vec2{X: rect.W, Y: rect.H})
	return clicked
}

// ButtonAt draws a push button at a fixed rectangle.
// A click is a press and release both inside the button.
func (ctx *Context) ButtonAt(label string, rect Rect) bool {
	return ctx.button(ctx.GetID(label), label, rect)
}

func (ctx *Context) button(id ID, label string, rect Rect) bool {
	hovered, held, clicked := ctx.buttonBehavior(id, rect)

	bg := ctx.style.ButtonColor
	switch {
	case held && hovered:
		bg = ctx.style.ButtonActiveColor
	case hovered:
		bg = ctx.style.ButtonHoveredColor
	}

	ctx.DrawList.AddRect(rect.X, rect.Y, rect.W, rect.H, bg)
	if ctx.style.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(rect.X, rect.Y, rect.W, rect.H, ctx.style.ButtonBorderColor, ctx.style.BorderSize)
	}

	size := ctx.MeasureText(label)
	c := rect.Center()
	ctx.DrawList.PushClipRect(rect.X, rect.Y, rect.X+rect.W, rect.Y+rect.H)
	ctx.AddText(c.X-size.X/2, c.Y-size.Y/2, label, ctx.style.ButtonTextColor)
	ctx.DrawList.PopClipRect()

	return clicked
}

// Image draws a texture at the cursor.
func (ctx *Context) Image(textureID uint32, w, h float32) {
	ctx.DrawList.AddImage(textureID, ctx.cursor.X, ctx.cursor.Y, w, h, ColorWhite)
	ctx.advanceCursor(Vec2{X: w, Y: h})
}

// MessageBox draws a modal box centered in the display with an OK button.
// While it is shown, widgets outside it ignore input from the next frame on.
// Returns true when the user dismisses it with OK or Enter.
func (ctx *Context) MessageBox(title, text string) bool {
	ctx.modalThisFrame = true
	ctx.inModal = true
	defer func() { ctx.inModal = false }()

	main := ctx.DrawList
	ctx.DrawList = ctx.ForegroundDrawList
	defer func() { ctx.DrawList = main }()

	s := ctx.style
	pad := s.WindowPadding
	lineH := ctx.LineHeight()
	textSize := ctx.MeasureText(text)
	titleSize := ctx.MeasureText(title)
	okSize := ctx.MeasureText("OK")

	btnW := maxf(okSize.X+s.ButtonPadding*2, 75)
	btnH := okSize.Y + s.ButtonPadding
	titleH := lineH + pad

	w := maxf(maxf(textSize.X, titleSize.X), btnW) + pad*4
	h := titleH + pad*2 + textSize.Y + pad + btnH + pad
	x := (ctx.DisplaySize.X - w) / 2
	y := (ctx.DisplaySize.Y - h) / 2

	ctx.DrawList.AddRect(0, 0, ctx.DisplaySize.X, ctx.DisplaySize.Y, s.DimColor)
	ctx.DrawList.AddRect(x, y, w, h, s.DialogColor)
	ctx.DrawList.AddRect(x, y, w, titleH, s.DialogTitleColor)
	if s.BorderSize > 0 {
		ctx.DrawList.AddRectOutline(x, y, w, h, s.ButtonBorderColor, s.BorderSize)
	}
	ctx.AddText(x+pad, y+pad/2, title, s.DialogTitleText)
	ctx.AddText(x+pad*2, y+titleH+pad*2, text, s.TextColor)

	btn := Rect{X: x + w - btnW - pad, Y: y + h - btnH - pad, W: btnW, H: btnH}
	ctx.PushID(title)
	clicked := ctx.button(ctx.GetID("OK"), "OK", btn)
	ctx.PopID()

	if ctx.Input != nil && ctx.Input.KeyPressed(KeyEnter) {
		clicked = true
	}
	if clicked {
		Logger.Debug("message box dismissed", "title", title)
	}
	return clicked
}
