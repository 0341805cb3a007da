package builder_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-automata/builder"
)

// Example builds "two digits, then one or more letters" and queries it.
func Example() {
	b := builder.New([]rune("01ab"))
	b.Start().
		Exactly(2, '0', '1').
		OneOrMore('a', 'b').
		Accept()

	parser, err := b.GenerateParser()
	if err != nil {
		fmt.Println(err)
		return
	}
	re, _ := parser.Regex(func(r rune) string { return string(r) })
	fmt.Println(re)
	fmt.Println(parser.Parse([]rune("10abba")))
	fmt.Println(parser.Parse([]rune("1ab")))
	// Output:
	// [01][01][ab][ab]*
	// accept
	// reject
}
