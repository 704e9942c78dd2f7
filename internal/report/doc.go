// Package report renders the converter's output: the packed token file, the
// console run summary, and the optional byte-to-source debug mapping.
package report
