package graphics

// Canvas is the drawing surface handed to the view during the draw pass.
//
// Hosts implement Canvas over their native surface. Transform and clip state
// is stacked: every Save must be balanced by a Restore.
type Canvas interface {
	// Save pushes the current transform and clip.
	Save()

	// Restore pops the most recently saved transform and clip.
	Restore()

	// Translate moves the origin by (dx, dy).
	Translate(dx, dy float64)

	// ClipRect intersects the clip with rect in local coordinates.
	ClipRect(rect Rect)

	// DrawRect fills rect with color.
	DrawRect(rect Rect, color Color)

	// DrawText draws a single line of text with its top-left corner at position.
	DrawText(text string, position Offset, color Color)

	// Size returns the size of the underlying surface.
	Size() Size
}
