package lexical_test

import (
	"fmt"

	"github.com/coregx/lexical"
)

func ExampleParseUint8() {
	fmt.Println(lexical.ParseUint8([]byte("250")))
	fmt.Println(lexical.ParseUint8([]byte("-1"))) // wraps onto the unsigned range
	// Output:
	// 250
	// 255
}

func ExampleTryParseUint8() {
	v, err := lexical.TryParseUint8([]byte("12a"))
	fmt.Println(v, err)
	// Output: 12 invalid digit found at index 2
}

func ExampleTryParseUint8_overflow() {
	_, err := lexical.TryParseUint8([]byte("9999a"))
	fmt.Println(err)
	// Output: numeric overflow at index 0
}

func ExampleParseIntRadix() {
	fmt.Println(lexical.ParseIntRadix[int16](16, []byte("-7f")))
	// Output: -127
}
