// Package series provides matrix-backed time series views.
//
// A view holds a dense row-major buffer of rows × columns samples together
// with three pieces of metadata: the start offset of the first row, the
// sampling interval between rows and an amplitude scale factor. Columns are
// independent channels sharing the same time axis.
//
// Operations in sibling packages accept the [View] interface, so callers may
// supply their own storage as long as it honours the accessor contract.
package series
