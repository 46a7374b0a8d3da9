// Package analytics turns a raw, unordered list of transactions into the
// derived views a dashboard needs: a fixed-length daily series, a category
// breakdown, a period-over-period comparison and a recent-activity list.
//
// Every function is a pure function of its inputs. The current date is
// always passed in (see Clock) so results are reproducible, and no state is
// shared between calls, so the package is safe for concurrent use without
// locking. Money is accumulated in fixed-point decimal and only converted to
// float64 at the edges.
package analytics
