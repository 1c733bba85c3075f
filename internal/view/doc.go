// Package view implements the draggable, zoomable image view.
//
// DraggableImageView owns the state a host toolkit would keep on the view: the
// current image, the optional edge insets, the bounds from the last layout
// pass and the derived fit geometry. It forwards all math to the geometry
// package and all raster work to a host-provided Rasterizer, so it can be
// bound to any UI toolkit or driven headless.
//
// # Lifecycle
//
//	v := view.New(view.DefaultOptions(), rasterizer, logger)
//	v.SetBounds(geometry.SizeOf(320, 568)) // host layout pass
//	v.SetImage(img)                        // refits, enables interaction
//	_ = v.SetInsets(&geometry.EdgeInsets{Top: 30, Left: 20, Bottom: 30, Right: 20})
//	out, err := v.RenderComposite()
//
// Every layout pass and every image change refits the image. A refit resets
// the pan offset to the origin and the zoom to 1 in the same assignment as
// the new displayed size.
//
// # Thread Safety
//
// DraggableImageView is not safe for concurrent use. The host must mutate it
// from a single goroutine, the same way a UI toolkit confines views to its main
// thread.
package view
