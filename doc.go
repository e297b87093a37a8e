// Package chainx provides small generic containers built on one singly
// linked list.
//
// LinkedList owns its chain of nodes exclusively: every node has exactly one
// predecessor, so the chain cannot form a cycle and the cached size always
// matches the node count. Queue and Stack are capability views over the same
// list type, not separate storage.
//
// HashTable is a fixed-bucket multiset of strings. Each bucket is a
// LinkedList. The routing function is picked from the bucket count alone:
// tables with more than WeightedFoldThreshold buckets use WeightedFold,
// smaller ones use Additive. Tables never resize. The only read path is Dump.
//
// Empty and no-match conditions are reported through a comma-ok result
// instead of an error.
package chainx
