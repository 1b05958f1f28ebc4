package sequence

import "fmt"

// ExampleEvaluate shows the two conventions side by side.
func ExampleEvaluate() {
	for _, n := range []uint64{0, 1, 2, 10} {
		legacy, _ := Evaluate(n, ConventionLegacy)
		standard, _ := Evaluate(n, ConventionStandard)
		fmt.Printf("n=%d legacy=%s@%d standard=%s@%d\n",
			n, legacy.Value, legacy.Reported, standard.Value, standard.Reported)
	}
	// Output:
	// n=0 legacy=0@1 standard=0@0
	// n=1 legacy=0@1 standard=1@1
	// n=2 legacy=0@2 standard=1@2
	// n=10 legacy=34@10 standard=55@10
}
