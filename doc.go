/*
Package glworks is a small immediate-mode UI toolkit for the demo programs:
static text, push buttons, message boxes, and images drawn through a
pluggable Renderer.

The UI is rebuilt every frame. Widgets return interaction results directly.

# Quick Start

	atlas := glworks.NewFontAtlas()
	renderer, _ := opengl.NewRenderer(400, 300, atlas)
	ui := glworks.New(renderer,
	    glworks.WithStyle(glworks.ClassicStyle()),
	    glworks.WithFontAtlas(atlas))

	for !window.ShouldClose() {
	    ctx := ui.Begin(input, glworks.Vec2{X: 400, Y: 300}, dt)

	    if ctx.ButtonAt("Click Me", glworks.Rect{X: 50, Y: 50, W: 100, H: 30}) {
	        showBox = true
	    }
	    if showBox && ctx.MessageBox("Button clicked", "You clicked the button!") {
	        showBox = false
	    }

	    ui.End()
	    window.SwapBuffers()
	}

# Buttons

A button fires when the left mouse button is pressed and released inside it.
Releasing outside cancels the click.

# Message Boxes

MessageBox draws into the foreground draw list, on top of everything else.
From the frame after it first appears, widgets outside the box ignore the
mouse until the caller stops drawing it. Enter dismisses the box.

# Colors

Colors are packed as 0xAABBGGRR. Use RGBA or RGBAf to build them.
*/
package glworks
