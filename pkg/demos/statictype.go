package demos

import "strconv"

// StaticType walks through the static typing example: an integer, a string
// and an explicit int-to-string conversion. Implicit conversions between the
// two do not compile, which is the point of the demo.
func StaticType() {
	variable := 10
	printLine(variable)

	str := "Hello"
	printLine(str)

	num := 10
	strNum := strconv.Itoa(num) + " apples"
	printLine(strNum)
}
