package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/glcore"
	"github.com/go-theft-auto/glcore/gltest"
)

func TestScreenshotShadersBuild(t *testing.T) {
	shots, err := buildScreenshots("../..")
	require.NoError(t, err)
	require.NotEmpty(t, shots)

	for _, s := range shots {
		t.Run(s.name, func(t *testing.T) {
			d := gltest.NewDriver()
			scene, err := glcore.NewScene(d, glcore.TriangleVertices, s.src, s.opts...)
			require.NoError(t, err)
			defer scene.Delete()
			if s.reload != nil {
				require.NoError(t, scene.Reload(*s.reload))
			}
			scene.Draw()
			assert.Len(t, d.Draws(), 1)
			assert.Empty(t, d.Violations())
		})
	}
}

func TestBuildScreenshotsMissingShaders(t *testing.T) {
	_, err := buildScreenshots(t.TempDir())
	assert.ErrorIs(t, err, glcore.ErrMissingSource)
}

func TestThumbnail(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 800, 600))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	th := thumbnail(img, 200)
	assert.Equal(t, image.Rect(0, 0, 200, 150), th.Bounds())
	c := th.RGBAAt(100, 75)
	assert.InDelta(t, 0xff, int(c.R), 1)
	assert.InDelta(t, 0xff, int(c.A), 1)

	assert.True(t, thumbnail(image.NewRGBA(image.Rect(0, 0, 0, 0)), 200).Bounds().Empty())
}
