// Package coloring implements ISEQ, the incremental sequential coloring
// engine shared by SATCOL and the Filter Phase.
//
// ISEQ greedily partitions a candidate vertex set into independent-set
// "color classes" by scanning vertices in a caller-supplied fixed order
// (COLOR-SORT, computed by the exact package) and placing each vertex in
// the first class it doesn't conflict with. It never reorders its input;
// determinism of the whole exact search depends on that.
package coloring
