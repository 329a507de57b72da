package transparent

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	dir := filepath.FromSlash("/tmp/out")
	want := dir + string(filepath.Separator) + "transparent-photo.png"

	assert.Equal(t, want, OutputPath(dir, "photo"))
}

func TestMakeBackgroundTransparentRoundTrip(t *testing.T) {
	dir := t.TempDir()

	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	src.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	src.SetRGBA(1, 0, color.RGBA{0, 0, 0, 255})
	src.SetRGBA(2, 0, color.RGBA{252, 253, 254, 255})
	src.SetRGBA(0, 1, color.RGBA{10, 200, 10, 255})
	src.SetRGBA(1, 1, color.RGBA{250, 250, 249, 255})
	src.SetRGBA(2, 1, color.RGBA{251, 255, 250, 255})

	res, path, err := MakeBackgroundTransparentResult(Source{Title: "photo", Image: src}, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "transparent-photo.png"), path)
	assert.Equal(t, 3, res.Transparent)

	decoded := readPNG(t, path)
	require.True(t, decoded.Bounds().Eq(src.Bounds()), "bounds %v, want %v", decoded.Bounds(), src.Bounds())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equalf(t, res.Image.NRGBAAt(x, y), nrgbaAt(decoded, x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestMakeBackgroundTransparentOverwrites(t *testing.T) {
	dir := t.TempDir()
	title := ksuid.New().String()
	path := OutputPath(dir, title)
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{255, 255, 255, 255})

	require.NoError(t, MakeBackgroundTransparent(Source{Title: title, Image: src}, dir))

	decoded := readPNG(t, path)
	assert.Equal(t, color.NRGBA{255, 255, 255, 0}, nrgbaAt(decoded, 0, 0))
}

func TestMakeBackgroundTransparentInvalidInput(t *testing.T) {
	valid := image.NewNRGBA(image.Rect(0, 0, 1, 1))

	cases := []struct {
		name string
		src  Source
	}{
		{name: "zero dimensions", src: Source{Title: "empty", Image: image.NewNRGBA(image.Rectangle{})}},
		{name: "nil image", src: Source{Title: "nil"}},
		{name: "empty title", src: Source{Image: valid}},
		{name: "title with separator", src: Source{Title: "a/b", Image: valid}},
		{name: "dot title", src: Source{Title: "..", Image: valid}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()

			err := MakeBackgroundTransparent(tc.src, dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidImage), "got %v", err)
			assert.False(t, errors.Is(err, ErrIO))

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries, "no file should be created")
		})
	}
}

func TestMakeBackgroundTransparentWriteFailure(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	err := MakeBackgroundTransparent(Source{Title: "photo", Image: src}, dir)
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrIO), "got %v", err)
	assert.True(t, errors.Is(err, fs.ErrNotExist), "got %v", err)

	var werr *WriteError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, "write", werr.Op)
	assert.Equal(t, OutputPath(dir, "photo"), werr.Path)
}

func readPNG(t *testing.T, path string) image.Image {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}
