// Package resolver derives the runnable views of a Yakefile: the flattened
// qualified-name lookup, the direct dependency map, the merged environment
// chain, and the multi-document composition rules.
//
// Every view is a pure function over the document. Nothing is cached, so a
// composition via Merge can never leave a stale derived structure behind.
package resolver
