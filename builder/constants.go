// Package builder defines shared constants used by the combinators, ensuring
// consistent error context and vertex descriptions.
package builder

//-----------------------------------------------------------------------------
// Combinator Name Constants
//   used to prefix errors with the combinator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodExactlyOne is the canonical name for State.ExactlyOne.
	MethodExactlyOne = "ExactlyOne"
	// MethodExactly is the canonical name for State.Exactly.
	MethodExactly = "Exactly"
	// MethodAtLeast is the canonical name for State.AtLeast.
	MethodAtLeast = "AtLeast"
	// MethodZeroOrMore is the canonical name for State.ZeroOrMore.
	MethodZeroOrMore = "ZeroOrMore"
	// MethodOneOrMore is the canonical name for State.OneOrMore.
	MethodOneOrMore = "OneOrMore"
	// MethodRange is the canonical name for State.Range.
	MethodRange = "Range"
	// MethodNot is the canonical name for State.Not.
	MethodNot = "Not"
	// MethodSplit is the canonical name for State.Split.
	MethodSplit = "Split"
	// MethodLoopOn is the canonical name for State.LoopOn.
	MethodLoopOn = "LoopOn"
	// MethodDontLoopOn is the canonical name for State.DontLoopOn.
	MethodDontLoopOn = "DontLoopOn"
	// MethodAccept is the canonical name for State.Accept. Accept and
	// InvertAll cannot fail; their names complete the table.
	MethodAccept = "Accept"
	// MethodInvertAll is the canonical name for State.InvertAll.
	MethodInvertAll = "InvertAll"
	// MethodGenerateParser is the canonical name for Builder.GenerateParser.
	MethodGenerateParser = "GenerateParser"
)

//-----------------------------------------------------------------------------
// Vertex Payload Defaults
//-----------------------------------------------------------------------------

// DefaultStartPayload describes the start vertex unless WithStartPayload overrides it.
const DefaultStartPayload = "start"

// Payload prefixes for vertices added by the combinators.
const (
	payloadAfter     = "after "
	payloadRangeEnd  = "range end"
	payloadSplitEnd  = "split end"
	payloadSeparator = " "
)

// MinRepeat is the smallest repetition count accepted by Exactly, AtLeast, and Range.
const MinRepeat = 0
