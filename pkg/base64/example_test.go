package base64_test

import (
	"fmt"

	"github.com/tdeslauriers/noncryptor/pkg/base64"
)

func ExampleEncode() {
	fmt.Println(base64.Encode([]byte("Do the dog catcher...")))
	// Output: RG8gdGhlIGRvZyBjYXRjaGVyLi4u
}

func ExampleDecode() {
	fmt.Printf("%s", base64.Decode("Ym93IHdvdyB3b3cgeWlwcHkg\neW8geWlwcHkgeWF5Li4uCg=="))
	// Output: bow wow wow yippy yo yippy yay...
}

// Decoded bytes are returned as-is, even when they are not valid text.
func ExampleDecode_binary() {
	payload := []byte{0xFF, 0xFE, 0x00}

	encoded := base64.Encode(payload)
	fmt.Println(encoded)
	fmt.Printf("%x\n", base64.Decode(encoded))
	// Output:
	// //4A
	// fffe00
}
