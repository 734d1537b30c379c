package chart

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/jsphweid/ragakey/evaluate"
	"github.com/jsphweid/ragakey/interval"
	"github.com/jsphweid/ragakey/mask"
	"github.com/jsphweid/ragakey/pitch"
	"github.com/jsphweid/ragakey/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func request(t *testing.T, cellSize int) Request {
	t.Helper()
	s, err := scale.Resolve(interval.Default(), []string{"S", "R", "G", "P"}, pitch.C)
	require.NoError(t, err)
	return Request{
		Scale:    s,
		Results:  evaluate.New(interval.Default(), mask.Default()).Evaluate(s),
		CellSize: cellSize,
	}
}

func TestRenderProducesPNGOfExpectedSize(t *testing.T) {
	req := request(t, 40)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, req))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	w, h := Size(req)
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())
	// 12 results in two columns gives six rows of panels
	assert.Equal(t, 2*(40*12+2*margin), w)
}

func TestRenderDefaultsCellSize(t *testing.T) {
	a, _ := Size(request(t, 0))
	b, _ := Size(request(t, 50))
	assert.Equal(t, b, a)
}

func TestRenderFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	require.NoError(t, RenderFile(path, request(t, 20)))
	assert.FileExists(t, path)
}
