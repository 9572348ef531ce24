package must_test

import (
	"fmt"
	"strconv"

	"github.com/replicate/orpanic/must"
)

func Example() {
	var home must.Option[string] = must.Some("/home/gopher")
	fmt.Println(home.OrPanic("HOME is unset"))
	fmt.Println(must.OptionOrPanic(must.Some(80), 500))

	n := must.From(strconv.Atoi("404")).OrPanic("parse status")
	fmt.Println(n)

	fmt.Println(must.Err[int]("boom"))
	// Output:
	// /home/gopher
	// 80
	// 404
	// Err("boom")
}
