package transparent

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
)

// OutputPrefix is prepended to the source title to name the output file.
const OutputPrefix = "transparent-"

// Source is a decoded raster paired with the title used to name its output.
type Source struct {
	Title string
	Image image.Image
}

// OutputPath returns the file the transformer writes for title inside dir.
func OutputPath(dir, title string) string {
	return filepath.Join(dir, OutputPrefix+title+".png")
}

// MakeBackgroundTransparent clears the near-white background of src and
// writes the result to OutputPath(outputDir, src.Title), replacing any
// existing file.
func MakeBackgroundTransparent(src Source, outputDir string) error {
	_, _, err := MakeBackgroundTransparentResult(src, outputDir)
	return err
}

// MakeBackgroundTransparentResult behaves like MakeBackgroundTransparent and
// also returns the in-memory result and the path that was written.
func MakeBackgroundTransparentResult(src Source, outputDir string) (Result, string, error) {
	if err := validateTitle(src.Title); err != nil {
		return Result{}, "", err
	}

	res, err := Transparentize(src.Image)
	if err != nil {
		return Result{}, "", err
	}

	path := OutputPath(outputDir, src.Title)

	// Encode fully before touching the disk so an encoder failure leaves no file.
	var buf bytes.Buffer
	if err := EncodePNG(&buf, res.Image); err != nil {
		return Result{}, "", &WriteError{Op: "encode", Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, "", &WriteError{Op: "write", Path: path, Err: err}
	}

	return res, path, nil
}

func validateTitle(title string) error {
	if title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidImage)
	}
	if strings.ContainsAny(title, `/\`) || title == "." || title == ".." {
		return fmt.Errorf("%w: title %q is not a file name", ErrInvalidImage, title)
	}
	return nil
}
