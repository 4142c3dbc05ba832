// Package supportpoint converts a human-authored report body into a support
// point record.
//
// A report body carries a two-column markdown table of properties and an
// optional notes block:
//
//	| property | value |
//	| --- | --- |
//	| title | html_label_element_explicit_aam |
//	| at | vo_macos |
//	| output_1_command | VO + right arrow |
//	...
//
//	== begin notes ==
//	free text
//	== end notes ==
//
// Extraction never fails on bad data. Absent values stay nil and are listed
// in the returned Diagnostics.
package supportpoint
