// Package report produces the capture analysis report.
//
// Summarize turns a loaded Document into a fixed, ordered slice of Sections;
// Render prints them as banner-delimited text. Every section tolerates
// missing data by rendering zero counts or an empty body, never by failing.
package report
