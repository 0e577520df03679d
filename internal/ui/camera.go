package ui

// Viewport returns the map coordinate drawn at the top-left screen cell so
// that (focusX, focusY) stays in view.
//
// When the map is larger than the view the camera centres on the focus and
// clamps to the map edges. When it is smaller the map is centred on screen
// and the offset is negative.
func Viewport(viewW, viewH, mapW, mapH, focusX, focusY int) (offX, offY int) {
	return axisOffset(viewW, mapW, focusX), axisOffset(viewH, mapH, focusY)
}

func axisOffset(view, size, focus int) int {
	if size <= view {
		return -(view - size) / 2
	}
	off := focus - view/2
	if off < 0 {
		return 0
	}
	if off > size-view {
		return size - view
	}
	return off
}
