package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	transparent "github.com/gcslaoli/transparent-bg-go"
)

// go run main.go -in logo.jpg
// go run main.go -in logo.jpg -outdir ./out
// go run main.go -in scan.webp -title scan-clean -outdir ./out
// go run main.go -inbase64 "data:image/png;base64,..." -outbase64

func main() {
	input := flag.String("in", "", "Path to the source image (png/jpg/gif/webp)")
	inputBase64 := flag.String("inbase64", "", "Base64 image input (optionally data URL)")
	title := flag.String("title", "", "Title used to name the output (defaults to the input file name)")
	outDir := flag.String("outdir", "", "Output directory (defaults to the input's directory)")
	outputBase64 := flag.Bool("outbase64", false, "Write the PNG as base64 to stdout instead of a file")
	flag.Parse()

	if *input == "" && *inputBase64 == "" {
		flag.Usage()
		os.Exit(1)
	}

	var (
		src    transparent.Source
		source string
	)

	if *inputBase64 != "" {
		img, _, err := transparent.DecodeBase64Image(*inputBase64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode input: %v\n", err)
			os.Exit(1)
		}
		src = transparent.Source{Title: "output", Image: img}
		source = "base64"
	} else {
		var err error
		src, err = transparent.Open(*input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open input: %v\n", err)
			os.Exit(1)
		}
		source = *input
	}

	if *title != "" {
		src.Title = *title
	}

	if *outputBase64 {
		res, err := transparent.Transparentize(src.Image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "transform: %v\n", err)
			os.Exit(1)
		}
		encoded, err := transparent.EncodePNGToBase64(res.Image)
		if err != nil {
			fmt.Fprintf(os.Stderr, "encode base64 output: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(encoded)
		return
	}

	dir := *outDir
	if dir == "" {
		dir = "."
		if *input != "" {
			dir = filepath.Dir(*input)
		}
	}

	res, path, err := transparent.MakeBackgroundTransparentResult(src, dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "make background transparent: %v\n", err)
		os.Exit(1)
	}

	b := res.Image.Bounds()
	fmt.Printf("Processed %s -> %s [%dx%d, %d transparent pixels, reference %s]\n",
		source, path, b.Dx(), b.Dy(), res.Transparent, res.ReferenceHex())
}
