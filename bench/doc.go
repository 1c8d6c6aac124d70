// Package bench holds benchmarks for the rules package. Run with
// go test -bench=. ./bench
package bench
