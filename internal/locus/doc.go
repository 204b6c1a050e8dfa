// Package locus maps a genomic coordinate to the annotated feature that
// contains it. It knows two annotation formats, each a Format: Tabular
// (GFF-style, genes and pseudogenes, identified by Name=) and Annotation
// (GenBank, CDS features, identified by locus_tag).
//
// Every lookup streams its source from the start and stops at the first
// containing feature. Nothing is indexed or cached between calls.
// This package never imports cli, app, pipeline or the writers.
package locus
