// Package render turns colony snapshots into image files.
//
// FrameWriter implements aco.Observer. Per iteration it draws
//
//	<dir>/paths/path_NNNN.png     - points in red, best-so-far path in green
//	<dir>/pheromone/pm_NNNN.png   - pheromone heatmap, values to one decimal
//
// and at the end of the run it assembles
//
//	<dir>/paths.gif, <dir>/pheromone.gif - the frames above as animations
//	<dir>/convergence.png                - best length per iteration
//
// Drawing uses github.com/fogleman/gg, the chart uses
// github.com/wcharczuk/go-chart/v2, animations use image/gif.
//
// Rendering never fails the run: the first I/O or encoding error is kept and
// returned by Err, and later callbacks become no-ops.
package render
