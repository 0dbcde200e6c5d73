// Command seqmatch finds which sequences in one FASTA file are similar to the
// sequences in another, optionally aligning each matching pair.
//
// Usage:
//
//	seqmatch match -a A.fa [-b B.fa] [flags]
//	seqmatch convert -i matches.tsv [-a A.fa]
//	seqmatch config
//	seqmatch version
//
// Run "seqmatch <command> --help" for the flags of each command.
package main

func main() {
	Execute()
}
