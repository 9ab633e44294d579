package match_test

import (
	"errors"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/toejough/fntest"
	"github.com/toejough/fntest/match"
)

func TestHaveCall(t *testing.T) {
	t.Parallel()

	calls := []fntest.Call{
		{Name: "GetUserByEmail", Args: []any{"e@x.com"}},
		{Name: "InsertUser", Args: []any{"e@x.com", "n", "hash"}},
	}

	t.Run("exact args", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		g.Expect(calls).To(match.HaveCall("GetUserByEmail", "e@x.com"))
		g.Expect(calls).NotTo(match.HaveCall("GetUserByEmail", "other@x.com"))
		g.Expect(calls).NotTo(match.HaveCall("GetUserByEmail"))
	})

	t.Run("nested matchers", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		nonEmpty := match.Satisfy(func(s string) error {
			if s == "" {
				return errors.New("empty")
			}

			return nil
		})

		g.Expect(calls).To(match.HaveCall("InsertUser", HavePrefix("e@"), match.BeAny, nonEmpty))
		g.Expect(calls).NotTo(match.HaveCall("InsertUser", "e@x.com", "n", Equal("other")))
	})

	t.Run("name only", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		g.Expect(calls).To(match.HaveCallNamed("InsertUser"))
		g.Expect(calls).NotTo(match.HaveCallNamed("HashPassword"))
	})

	t.Run("reads an Invoker", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		inv := fntest.New(fntest.WithState(fntest.State{Enabled: true, Calls: calls}))

		g.Expect(inv).To(match.HaveCall("GetUserByEmail", "e@x.com"))
	})

	t.Run("rejects other actuals", func(t *testing.T) {
		t.Parallel()
		g := NewWithT(t)

		matcher := match.HaveCallNamed("X")
		ok, err := matcher.Match("not calls")

		g.Expect(ok).To(BeFalse())
		g.Expect(err).To(MatchError(ContainSubstring("type mismatch")))
		g.Expect(matcher.FailureMessage(42)).To(ContainSubstring("type mismatch"))
	})
}

func TestHaveCall_Messages(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	calls := []fntest.Call{{Name: "HashPassword", Args: []any{"p"}}}

	failure := match.HaveCall("InsertUser", "e@x.com").FailureMessage(calls)
	g.Expect(failure).To(ContainSubstring(`InsertUser("e@x.com")`))
	g.Expect(failure).To(ContainSubstring(`HashPassword("p")`))

	negated := match.HaveCallNamed("HashPassword").NegatedFailureMessage(calls)
	g.Expect(negated).To(ContainSubstring("expected no call HashPassword(...)"))

	g.Expect(match.HaveCallNamed("X").FailureMessage([]fntest.Call{})).To(ContainSubstring("no calls recorded"))
}

func TestSatisfy(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	positive := match.Satisfy(func(n int) error {
		if n <= 0 {
			return errors.New("not positive")
		}

		return nil
	})

	ok, err := positive.Match(3)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeTrue())

	ok, err = positive.Match(-1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(ok).To(BeFalse())
	g.Expect(positive.FailureMessage(-1)).To(ContainSubstring("not positive"))

	_, err = positive.Match("three")
	g.Expect(err).To(MatchError(ContainSubstring("type mismatch")))
}
