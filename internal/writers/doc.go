// Package writers serializes dedup results for the sequniq tools.
//
// Record output is plain Fasta/Fastq (see fastx.Write). Identifier group
// reports go through a format registry: text, json, jsonl and yaml.
package writers
