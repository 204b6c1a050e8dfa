// Package pipeline runs one Resolver call per coordinate over a bounded
// worker pool and hands the lookups to a visit callback in input order.
//
// The only contract to implement is Resolver. The pipeline keeps no
// state between coordinates; each call resolves on its own.
package pipeline
