package goquery_test

import (
	"testing"

	foodrun "github.com/morrisxelijah/food-run"
	"github.com/morrisxelijah/food-run/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Registry implements foodrun.RuleRegistry at compile time.
var _ foodrun.RuleRegistry = (*goquery.Registry)(nil)

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	t.Run("returns first match in registration order", func(t *testing.T) {
		t.Parallel()

		first := &staticRule{name: "first", host: "example.com"}
		second := &staticRule{name: "second", host: "example.com"}

		r := goquery.NewRegistry()
		r.Register(first)
		r.Register(second)

		got := r.Lookup("example.com")
		require.NotNil(t, got)
		assert.Equal(t, "first", got.Name())
	})

	t.Run("lowercases the host before matching", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		r.Register(&staticRule{name: "rule", host: "example.com"})

		assert.NotNil(t, r.Lookup("EXAMPLE.com"))
	})

	t.Run("no match returns nil", func(t *testing.T) {
		t.Parallel()

		r := goquery.NewRegistry()
		r.Register(&staticRule{name: "rule", host: "example.com"})

		assert.Nil(t, r.Lookup("other.org"))
	})
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	r := goquery.NewRegistry()
	r.Register(&staticRule{name: "a", host: "a.com"})
	r.Register(&staticRule{name: "b", host: "b.com"})

	rules := r.List()
	require.Len(t, rules, 2)
	assert.Equal(t, "a", rules[0].Name())
	assert.Equal(t, "b", rules[1].Name())
}

func TestNewDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := goquery.NewDefaultRegistry()

	tests := []struct {
		host string
		want string
	}{
		{"www.budgetbytes.com", "budgetbytes"},
		{"www.skinnytaste.com", "skinnytaste"},
		{"www.seriouseats.com", "seriouseats"},
		{"www.thepioneerwoman.com", "pioneerwoman"},
	}
	for _, tt := range tests {
		rule := r.Lookup(tt.host)
		require.NotNil(t, rule, "host %s", tt.host)
		assert.Equal(t, tt.want, rule.Name())
	}

	assert.Nil(t, r.Lookup("www.example.com"))
}
