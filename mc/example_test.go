package mc_test

import (
	"fmt"

	"github.com/Johnnychien199108/2019MC/mc"
)

// ExampleSummarize demonstrates the summary statistics on a small
// hand-written replication table against a true value of 1.
func ExampleSummarize() {
	records := []mc.Record{
		{Estimate: 0.9, StdErr: 0.25, Lower: 0.4, Upper: 1.4},
		{Estimate: 1.1, StdErr: 0.25, Lower: 0.6, Upper: 1.6},
		{Estimate: 1.0, StdErr: 0.25, Lower: 0.5, Upper: 1.5},
		{Estimate: 1.2, StdErr: 0.25, Lower: 1.1, Upper: 1.7},
	}

	sum, err := mc.Summarize(records, 1.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("replications=%d\n", sum.Replications)
	fmt.Printf("mean=%.3f bias=%.3f\n", sum.MeanEstimate, sum.Bias)
	fmt.Printf("coverage=%.2f\n", sum.Coverage)
	// Output:
	// replications=4
	// mean=1.050 bias=0.050
	// coverage=0.75
}

// ExampleSummarize_zeroTruth shows the explicit sentinel for an undefined
// relative bias.
func ExampleSummarize_zeroTruth() {
	_, err := mc.Summarize([]mc.Record{{Estimate: 0.1}, {Estimate: -0.1}}, 0)
	fmt.Println(err)
	// Output: mc: true parameter is zero, relative bias undefined
}
