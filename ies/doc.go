// Package ies reads and writes IESNA LM-63 (.ies) photometric files.
//
// The file is written from a fixed template:
//
//	IESNA:LM-63-2002
//	[TEST] ...          eight keyword lines, TEST through LAMP
//	TILT=NONE
//	<lamps> <lumens> <multiplier> <Nv> <Nh> <type> <units> <width> <length> <height>
//	<ballast factor> <future use> <input watts>
//	<Nv vertical angles>
//	<Nh horizontal angles>
//	<Nv*Nh candela values>
//
// When reading, everything after the TILT line is treated as one stream of
// whitespace-separated values, so tables wrapped over several lines are
// accepted. Only TILT=NONE is supported.
package ies
