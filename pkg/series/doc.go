// Package series loads and aggregates the CSV time series a heatmap is
// rendered from.
//
// Input rows carry an ISO-formatted date key (YYYY-MM-DD), a numeric
// value, and an optional label. Rows are grouped by date with the first
// row winning on duplicates, which matches the keyed-aggregation step
// of the visualization this tool descends from. The package also
// provides the ten-bucket [Quantize] scale that maps values to color
// bucket indices.
package series
