package core_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/fntest/internal/core"
)

func TestInvokeAs(t *testing.T) {
	t.Parallel()

	t.Run("converts the first result", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()

		g.Expect(core.InvokeAs[int](inv, &accumulator{total: 2}, "Add", 3)).To(Equal(5))
	})

	t.Run("nil result becomes the zero value", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()
		lookup := map[string]any{"Find": func() any { return nil }}

		g.Expect(core.InvokeAs[*accumulator](inv, lookup, "Find")).To(BeNil())
	})

	t.Run("type mismatch panics", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()

		g.Expect(func() { core.InvokeAs[string](inv, &accumulator{}, "Add", 1) }).
			To(PanicWith(MatchError(core.ErrResultType)))
	})

	t.Run("missing result panics", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()

		g.Expect(func() { core.InvokeAs[int](inv, core.Named("noop", func() {}), "") }).
			To(PanicWith(MatchError(core.ErrResultType)))
	})
}

func TestInvokeAs2(t *testing.T) {
	t.Parallel()

	t.Run("value and nil error", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()
		lookup := map[string]any{"Get": func(key string) (string, error) { return "v:" + key, nil }}

		value, err := core.InvokeAs2[string, error](inv, lookup, "Get", "k")

		g.Expect(err).NotTo(HaveOccurred())
		g.Expect(value).To(Equal("v:k"))
	})

	t.Run("error from a double", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		errMissing := errors.New("missing")
		inv := core.New(core.WithState(core.State{
			Enabled: true,
			Doubles: []core.Double{{Name: "Get", Fn: func(string) (string, error) { return "", errMissing }}},
		}))
		lookup := map[string]any{"Get": func(string) (string, error) { return "real", nil }}

		value, err := core.InvokeAs2[string, error](inv, lookup, "Get", "k")

		g.Expect(err).To(MatchError(errMissing))
		g.Expect(value).To(BeEmpty())
	})

	t.Run("single result panics", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := core.New()

		g.Expect(func() { core.InvokeAs2[int, error](inv, &accumulator{}, "Add", 1) }).
			To(PanicWith(MatchError(core.ErrResultType)))
	})
}
