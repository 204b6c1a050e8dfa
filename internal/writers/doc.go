// Package writers turns lookups into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV rows, JSON/JSONL, GFF).
//   • The locus package stays domain-only; the pipeline stays orchestration-only.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
