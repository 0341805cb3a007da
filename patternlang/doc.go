// Package patternlang is a small text syntax for builder programs over runes.
//
// A program is a sequence of statements, optionally separated by ";":
//
//	one C            exactly one symbol from C
//	exactly N C      N symbols from C
//	atleast N C      N or more symbols from C
//	zeroormore C     any number of symbols from C
//	oneormore C      one or more symbols from C
//	range N M C      N symbols from C, then up to M-N more, then one terminator
//	not C            one symbol outside C
//	accept           mark the current position accepting
//	invert           complement the accepting set
//	split { C: prog | C: prog }
//	loop C { prog }
//	dontloop C { prog }
//
// A class C is written in brackets: [abc], [a-z0-9], [\]\-]. Inside a class
// a backslash takes the next rune literally and "x-y" is an inclusive range.
// "#" starts a comment running to the end of the line.
//
// Parse builds the syntax tree with participle; Compile runs it through a
// builder.Builder and returns the minimized automaton.
package patternlang
