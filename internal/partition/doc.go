// Package partition implements the dock partitioning engine: it assigns
// every dock number in a bounded range to exactly one output group,
// honoring the priority ordering, hard-pinned exception groups, and
// per-class capacity limits.
//
// The engine runs in three stages:
//  1. Exception group resolution — raw exception inputs are range-filtered,
//     sorted, deduplicated, and made pairwise disjoint (first claim wins),
//     then canonically ordered by each group's smallest member.
//  2. Priority classification — every non-exception dock gets a priority
//     class; docks with no explicit assignment default to third.
//  3. Sequential partitioning — one ascending scan over [min, max] emits
//     exception groups verbatim at their smallest member and greedily
//     builds capacity-bounded regular groups for everything else.
//
// The engine is single-threaded and allocation-scoped: each Partition call
// derives everything fresh from its Input and shares no state. Recoverable
// input anomalies (out-of-range docks, duplicate exception claims) are
// collected as warnings on the Result rather than written to any stream,
// leaving presentation to the caller.
package partition
