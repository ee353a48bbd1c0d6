package noise_test

import (
	"fmt"

	"github.com/katalvlaran/trinoise/noise"
)

// ExampleSignature generates one full period for base 3 and prints the
// numeric symbol encoding. The pattern 12010 repeats three times and,
// like every signature, ends in Zero.
func ExampleSignature() {
	sig, err := noise.Signature(3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, s := range sig {
		fmt.Print(uint8(s))
	}
	fmt.Println()
	// Output:
	// 120101201012010
}

// ExampleAlignmentCount shows alignment against the identity map.
// In base 3 the identity map is 012, which is the number 5, so all
// three digit positions align.
func ExampleAlignmentCount() {
	fmt.Println(noise.AlignmentCount(0, 3))
	fmt.Println(noise.AlignmentCount(5, 3))
	fmt.Println(noise.AlignmentCount(6, 3))
	// Output:
	// 1
	// 3
	// 1
}

// ExampleRunLength counts successors of v sharing its alignment.
// Starting at 2, both 3 and 4 have alignment 2, so the run length is 2.
func ExampleRunLength() {
	fmt.Println(noise.RunLength(0, 3))
	fmt.Println(noise.RunLength(2, 3))
	fmt.Println(noise.RunLength(4, 3))
	// Output:
	// 1
	// 2
	// 0
}

// ExampleClassify maps run lengths onto the three symbols for base 5.
func ExampleClassify() {
	fmt.Println(noise.Classify(0, 5))
	fmt.Println(noise.Classify(3, 5))
	fmt.Println(noise.Classify(4, 5))
	// Output:
	// Zero
	// Low
	// High
}

// ExampleSymbol_Level renders symbols as the display values {0, N-2, N-1}
// a thin caller would feed into a noise raster.
func ExampleSymbol_Level() {
	sig, _ := noise.Signature(3)
	levels := make([]int, 0, len(sig))
	for _, s := range sig[:5] {
		levels = append(levels, s.Level(3))
	}
	fmt.Println(levels)
	// Output:
	// [1 2 0 1 0]
}
