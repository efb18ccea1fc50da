// Package solution turns a solver's decision file into a selection report.
//
// A run reads the decision file, keeping only lines that mention "build["
// (case-insensitive), and takes the 4th whitespace token of each as the 0/1
// decision for the next candidate. It then loads four companion files that
// share a filename prefix:
//
//	<prefix>candidates.txt     one candidate per line, member names
//	<prefix>storage.txt        one row per candidate, storage cost in column 0
//	<prefix>total_storage.txt  1x1 storage budget
//	<prefix>T.txt              1x1 threshold
//
// Candidate i, storage row i and decision i are paired purely by position.
// The generator verifies the three counts agree, but cannot verify that the
// files were produced from the same model run.
//
// Every failure aborts the run. No partial report is produced.
package solution
