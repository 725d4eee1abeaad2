package opengl

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ReadPixels reads the lower-left width x height region of the current
// framebuffer into an image with the origin at the top-left.
func ReadPixels(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if width <= 0 || height <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	flipRows(img.Pix, width*4, height)
	return img
}

// flipRows reverses the row order of pix in place. GL's origin is the
// bottom-left corner.
func flipRows(pix []byte, rowLen, rows int) {
	tmp := make([]byte, rowLen)
	for y := 0; y < rows/2; y++ {
		top := y * rowLen
		bot := (rows - 1 - y) * rowLen
		copy(tmp, pix[top:top+rowLen])
		copy(pix[top:top+rowLen], pix[bot:bot+rowLen])
		copy(pix[bot:bot+rowLen], tmp)
	}
}
