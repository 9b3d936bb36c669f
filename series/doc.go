// Package series implements the decade-scaling search engine behind the
// eseries module.
//
// A Series owns one decade's worth of integer mantissas (for E12: 10, 12,
// 15, ..., 82) and the power-of-ten exponent that table is expressed at.
// Every concrete series value is a mantissa shifted by some whole number of
// decades, so a single small table covers any magnitude from femto to tera
// and beyond.
//
// # Core Types
//
//   - Series: immutable series definition plus the search and iteration
//     operations. Construct with New or MustNew; the root eseries package
//     provides the standard E3 through E192 definitions ready-made.
//
// # Search Workflow
//
// Point queries resolve a single member around a query value:
//
//	e12 := series.MustNew("E12", 0.1, []int{10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82})
//
//	e12.FindGreaterOrEqual(31) // 33
//	e12.FindLessOrEqual(31)    // 27
//	e12.FindNearest(31)        // 33
//	e12.FindNearestFew(31, 3)  // [22, 27, 33]
//
// Iteration produces lazy, unbounded sequences in either direction, and
// Range bounds the ascending walk with a stop condition:
//
//	for v := range e12.Range(31, 680, true) {
//	    fmt.Println(v) // 33, 39, 47, ..., 560, 680
//	}
//
// # Decade Scaling
//
// A query value is first assigned a decade offset from floor(log10(value)),
// corrected against the mantissa window because math.Log10 is not exact at
// powers of ten. The binary search then compares mantissas scaled into the
// query's decade directly against the query, so a value constructed from a
// table entry always finds that entry. Walking past either end of the table
// wraps the index around and moves the offset one decade, which is what
// carries sequences across decade boundaries without skipping or duplicating
// the boundary member.
//
// # Thread Safety
//
// Series values are immutable and safe for concurrent use. Iterators
// returned by Ascending, Descending and Range carry their own cursor state;
// concurrent consumers of the same Series never share state.
//
// # Error Handling
//
// Construction reports invalid definitions through sentinels in the errs
// package. Search operations assume finite, positive query values and return
// plain float64 results; input validation for external callers lives in the
// root eseries package, keeping the engine free of per-call checks.
package series
