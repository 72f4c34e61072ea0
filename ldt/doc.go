// Package ldt reads and writes EULUMDAT (.ldt) photometric files.
//
// An LDT file is a flat sequence of lines without delimiters between
// sections. The first 26 lines are scalar fields; line 26 (number_n) gives
// the number of 6-line lamp records that follow; then come the 10 direct
// ratios, number_mc C-plane angles, number_ng gamma angles and finally the
// luminous intensity table, whose length depends on the symmetry code:
//
//	symmetry  C-plane columns (mc1..mc2)      stored planes
//	1         1 .. Mc                          all
//	2         1 .. 1                           one (rotational symmetry)
//	3         1 .. Mc/2+1                      C0-C180 half
//	4         3*Mc/4+1 .. 5*Mc/4+1             C90-C270 half
//	5         1 .. Mc/4+1                      C0-C90 quarter
//
// The table holds (mc2-mc1+1)*Ng values, C-plane major. A file whose line
// count differs from the count derived from its header is rejected with a
// *document.LayoutError.
package ldt
