package fixture

import "fmt"

func single() {
	x := 42
	_ = Show(x + 10)
}

func multi() {
	a, b := 1, 2
	Show(a, b)
}

func nestedCommas() {
	Show(fmt.Sprintf("%d, %d", 1, 2))
}

func multiline() {
	x := 42
	Show(
		x + 10,
		"tail",
	)
}

func sameLine() {
	Show(1); Show(2)
}

func nested() {
	_ = Show(Show(1))
}

func qualified(x int) {
	show.Show(x)
}
