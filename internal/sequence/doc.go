// Package sequence evaluates positions of the Fibonacci recurrence
// F(0)=0, F(1)=1, F(k)=F(k-1)+F(k-2) with a rolling three-slot accumulator
// window: O(n) time, O(1) additional space.
//
// Two conventions are supported. ConventionLegacy keeps the console
// exercise's loop bound of n-2 together with its off-by-one results, so
// position n prints F(n-1). ConventionStandard reports the mathematical F(n).
package sequence
