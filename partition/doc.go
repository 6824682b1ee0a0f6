// Package partition computes p(n), the number of integer partitions of n,
// with Euler's pentagonal-number recurrence
//
//	p(n) = Σ_{k≥1} (−1)^{k−1} [p(n − g_{2k−1}) + p(n − g_{2k})]
//
// where g_1, g_2, ... are the generalized pentagonal numbers 1, 2, 5, 7, 12,
// ... and the signs run +, +, −, −, ... in pairs.
//
// Every evaluation takes an explicit Cache. The cache is shared by all
// recursive calls of one evaluation and may be reused across evaluations in
// the same process; entries are written once and never evicted.
package partition
