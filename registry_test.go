package fntest_test

import (
	"sync"
	"testing"

	. "github.com/onsi/gomega"
	"pgregory.net/rapid"

	"github.com/toejough/fntest"
)

// TestForTest_SameT_ReturnsSameInvoker verifies that calling ForTest
// with the same *testing.T returns the same *Invoker instance.
func TestForTest_SameT_ReturnsSameInvoker(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inv1 := fntest.ForTest(t)
	inv2 := fntest.ForTest(t)

	g.Expect(inv1).To(BeIdenticalTo(inv2), "same t should return same Invoker")
}

// TestForTest_DifferentT_ReturnsDifferentInvoker verifies that different
// *testing.T values get isolated interception state.
func TestForTest_DifferentT_ReturnsDifferentInvoker(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	var inv1, inv2 *fntest.Invoker

	t.Run("subtest1", func(t *testing.T) {
		inv1 = fntest.ForTest(t)
		inv1.Reset(fntest.State{Enabled: true})
		inv1.Invoke(fntest.Named("noop", func() {}), "")
	})

	t.Run("subtest2", func(t *testing.T) {
		inv2 = fntest.ForTest(t)
	})

	g.Expect(inv1).NotTo(BeIdenticalTo(inv2), "different t should return different Invoker")
	g.Expect(inv1.Calls()).To(HaveLen(1))
	g.Expect(inv2.Calls()).To(BeEmpty())
}

// TestForTest_ConcurrentAccess verifies the registry is safe for
// concurrent access from multiple goroutines.
func TestForTest_ConcurrentAccess(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	const numGoroutines = 100
	results := make([]*fntest.Invoker, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := range numGoroutines {
		go func(idx int) {
			defer wg.Done()
			results[idx] = fntest.ForTest(t)
		}(i)
	}

	wg.Wait()

	for i := 1; i < numGoroutines; i++ {
		g.Expect(results[i]).To(BeIdenticalTo(results[0]),
			"concurrent calls with same t should return same Invoker")
	}
}

// TestForTest_ConcurrentAccess_Rapid uses property-based testing to
// verify concurrent access safety with randomized access patterns.
func TestForTest_ConcurrentAccess_Rapid(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(rt *rapid.T) {
		numGoroutines := rapid.IntRange(2, 50).Draw(rt, "numGoroutines")
		results := make([]*fntest.Invoker, numGoroutines)

		var wg sync.WaitGroup
		wg.Add(numGoroutines)

		for i := range numGoroutines {
			go func(idx int) {
				defer wg.Done()
				results[idx] = fntest.ForTest(t)
			}(i)
		}

		wg.Wait()

		for i := 1; i < numGoroutines; i++ {
			if results[i] != results[0] {
				rt.Fatalf("goroutine %d got different Invoker", i)
			}
		}
	})
}

// TestForTest_OptionsApplyOnCreation verifies options only configure a new Invoker.
func TestForTest_OptionsApplyOnCreation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	inv := fntest.ForTest(t, fntest.WithState(fntest.State{Enabled: true}))
	again := fntest.ForTest(t, fntest.WithState(fntest.State{Enabled: false}))

	g.Expect(again).To(BeIdenticalTo(inv))
	g.Expect(inv.Enabled()).To(BeTrue())
}
