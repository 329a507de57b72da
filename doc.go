// Package transparent turns the near-white background of a raster image into
// a transparent alpha channel and writes the result as PNG.
//
// Any pixel whose red, green and blue channels all fall within
// [BandMin, BandMax] is treated as background: its alpha is cleared while the
// RGB bits are kept. Every other pixel is made fully opaque. The package works
// entirely in memory until the final write and keeps no state between calls.
package transparent
