package glworks

import "testing"

func TestDrawListAddRect(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(10, 20, 30, 40, ColorRed)
	dl.Finalize()

	if len(dl.VtxBuffer) != 4 {
		t.Errorf("Expected 4 vertices, got %d", len(dl.VtxBuffer))
	}
	if len(dl.IdxBuffer) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(dl.IdxBuffer))
	}
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].ElemCount != 6 {
		t.Fatalf("Expected 1 command with 6 elements, got %+v", dl.CmdBuffer)
	}
	if got := dl.VtxBuffer[2].Pos; got != [2]float32{40, 60} {
		t.Errorf("Expected bottom-right corner (40, 60), got %v", got)
	}
}

func TestDrawListSkipsTransparent(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorTransparent)
	dl.AddRectOutline(0, 0, 10, 10, ColorTransparent, 1)
	dl.AddText(0, 0, "abc", ColorTransparent, 1, NewFontAtlas())

	if len(dl.VtxBuffer) != 0 {
		t.Errorf("Expected no vertices, got %d", len(dl.VtxBuffer))
	}
}

func TestDrawListOutline(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRectOutline(0, 0, 10, 10, ColorWhite, 1)
	if len(dl.VtxBuffer) != 16 {
		t.Errorf("Expected 4 edge quads, got %d vertices", len(dl.VtxBuffer))
	}
}

func TestDrawListTextureSplits(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.SetTexture(3)
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.SetTexture(3) // same texture, no split
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.SetTexture(0)
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[1].TextureID != 3 || dl.CmdBuffer[1].ElemCount != 12 {
		t.Errorf("Expected textured command with 12 elements, got %+v", dl.CmdBuffer[1])
	}
	if dl.CmdBuffer[1].VertexOffset != 4 {
		t.Errorf("Expected vertex offset 4, got %d", dl.CmdBuffer[1].VertexOffset)
	}
	// Indices are relative to the command's vertex offset.
	if dl.IdxBuffer[6] != 0 {
		t.Errorf("Expected first index of second command to be 0, got %d", dl.IdxBuffer[6])
	}
}

func TestDrawListClipStack(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.PushClipRect(1, 2, 3, 4)
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.PopClipRect()
	dl.AddRect(0, 0, 10, 10, ColorWhite)
	dl.PopClipRect() // extra pop is ignored
	dl.Finalize()

	if len(dl.CmdBuffer) != 2 {
		t.Fatalf("Expected 2 commands, got %d", len(dl.CmdBuffer))
	}
	if dl.CmdBuffer[0].ClipRect != [4]float32{1, 2, 3, 4} {
		t.Errorf("Expected pushed clip, got %v", dl.CmdBuffer[0].ClipRect)
	}
	if dl.CmdBuffer[1].ClipRect[0] != -1e9 {
		t.Errorf("Expected unbounded clip after pop, got %v", dl.CmdBuffer[1].ClipRect)
	}
}

func TestDrawListImageRestoresTexture(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	dl.SetTexture(1)
	dl.AddImage(9, 0, 0, 32, 32, ColorWhite)
	if dl.textureID != 1 {
		t.Errorf("Expected texture 1 restored, got %d", dl.textureID)
	}

	dl.AddImage(0, 0, 0, 32, 32, ColorWhite)
	dl.Finalize()
	if len(dl.CmdBuffer) != 1 || dl.CmdBuffer[0].TextureID != 9 {
		t.Errorf("Expected a single image command, got %+v", dl.CmdBuffer)
	}
	if uv := dl.VtxBuffer[2].TexCoord; uv != [2]float32{1, 1} {
		t.Errorf("Expected full texture UV, got %v", uv)
	}
}

func TestDrawListText(t *testing.T) {
	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)

	atlas := NewFontAtlas()
	dl.AddText(5, 5, "Hi!", ColorBlack, 2, atlas)

	if len(dl.VtxBuffer) != 12 {
		t.Fatalf("Expected 3 glyph quads, got %d vertices", len(dl.VtxBuffer))
	}
	second := dl.VtxBuffer[4].Pos
	if second[0] != 5+float32(atlas.CellW)*2 {
		t.Errorf("Expected second glyph at x=%v, got %v", 5+float32(atlas.CellW)*2, second[0])
	}
}

func TestDrawListClear(t *testing.T) {
	dl := AcquireDrawList()
	dl.SetTexture(4)
	dl.AddRect(0, 0, 1, 1, ColorWhite)
	ReleaseDrawList(dl)

	dl = AcquireDrawList()
	defer ReleaseDrawList(dl)
	if len(dl.VtxBuffer) != 0 || len(dl.CmdBuffer) != 0 || dl.textureID != 0 {
		t.Error("Expected acquired draw list to be cleared")
	}
}
