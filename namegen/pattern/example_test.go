package pattern_test

import (
	"fmt"

	"github.com/shiv50084/fantasyname/namegen/pattern"
	"github.com/shiv50084/fantasyname/namegen/symbols"
)

func ExampleCompile() {
	// Decorators stack most recent first: "ab" is reversed, then capitalized.
	g, err := pattern.Compile("!~(ab)", symbols.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Render(nil))
	// Output: Ba
}

func ExampleCompile_enumerate() {
	g, err := pattern.Compile("(a|b)(c|d)", symbols.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, name := range g.Enumerate() {
		fmt.Println(name)
	}
	// Output:
	// ac
	// ad
	// bc
	// bd
}

func ExampleCompile_bounds() {
	g, err := pattern.Compile("(a|b|)", symbols.Default())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.Count(), g.MinLength(), g.MaxLength())
	// Output: 3 0 1
}

func ExampleCompile_customTable() {
	table := symbols.Default().With('Z', "zar", "zim")
	g, err := pattern.Compile("Z(ok)", table)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, name := range g.Enumerate() {
		fmt.Println(name)
	}
	// Output:
	// zarok
	// zimok
}
