// Package imaging provides the raster operations behind the draggable image view.
//
// This package loads source images, crops rendered rasters, parses tint
// colors and encodes results. It works with standard Go image.Image types and
// uses a coordinate system where (0,0) is at the top-left corner, X increases
// rightward, and Y increases downward.
//
// # Coordinate System
//
// Crop rectangles are 0-based and relative to the raster's own top-left
// corner:
//   - Min is inclusive (top-left)
//   - Max is exclusive (bottom-right)
//
// # Thread Safety
//
// All functions are stateless and can be called concurrently on different
// images. Rasters are never mutated; Crop always returns a new image.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Crop rectangles that are empty or extend past the raster (ErrInvalidCropRect)
//   - File I/O errors during image loading
//   - Encoding errors during image output
//   - Malformed tint colors
//
// Crop rectangles are never clamped to the raster. A rectangle outside the
// raster is a caller bug and is reported as one.
package imaging
