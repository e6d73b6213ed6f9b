package restring_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/whitemech/logaut-go/restring"
)

type lowercase string

var lowercaseVariant = restring.Define[lowercase]("lowercase", `[a-z]+`)

type digits string

var digitsVariant = restring.Define[digits]("digits", `[0-9]+`)

func TestAnyAcceptsEverything(t *testing.T) {
	cases := []string{
		"",
		"abc",
		"abc1",
		"   ",
		"line1\nline2",
		"tab\tand\ttabs",
		"zażółć gęślą jaźń",
	}

	for _, tc := range cases {
		v, err := restring.Any.Parse(tc)
		require.NoError(t, err, tc)
		require.Equal(t, restring.Text(tc), v)
	}
}

func TestParseFullMatchOnly(t *testing.T) {
	valid := []string{"a", "abc", "zzzz"}

	invalid := []string{
		"",
		"abc1",
		"1abc",
		"abc ",
		" abc",
		"ABC",
		"abc\ndef",
		"abc\n",
	}

	for _, tc := range valid {
		v, err := lowercaseVariant.Parse(tc)
		require.NoError(t, err, tc)
		require.Equal(t, lowercase(tc), v)
		require.True(t, lowercaseVariant.Match(tc), tc)
	}

	for _, tc := range invalid {
		_, err := lowercaseVariant.Parse(tc)
		require.Error(t, err, tc)
		require.False(t, lowercaseVariant.Match(tc), tc)

		var ve *restring.ValidationError

		require.ErrorAs(t, err, &ve)
		require.Equal(t, tc, ve.Value)
		require.Equal(t, lowercaseVariant.Pattern(), ve.Pattern)
	}
}

func TestDefineWithUserSuppliedAnchors(t *testing.T) {
	// anchors inside the expression stay valid, the wrapper makes them redundant
	type letters string

	anchored := restring.Define[letters]("letters", `^[a-z]+$`)

	v, err := anchored.Parse("abc")
	require.NoError(t, err)
	require.Equal(t, letters("abc"), v)

	_, err = anchored.Parse("abc1")

	var ve *restring.ValidationError

	require.ErrorAs(t, err, &ve)
	require.Equal(t, "abc1", ve.Value)
	require.Equal(t, anchored.Pattern(), ve.Pattern)
}

func TestMustParse(t *testing.T) {
	require.Equal(t, lowercase("abc"), lowercaseVariant.MustParse("abc"))

	require.Panics(t, func() {
		lowercaseVariant.MustParse("abc1")
	})
}

func TestCoerceSameVariantIsIdentity(t *testing.T) {
	v1 := lowercaseVariant.MustParse("abc")

	v2, err := lowercaseVariant.Coerce(v1)
	require.NoError(t, err)
	require.Equal(t, v1, v2)
}

func TestCoerceValidatesStrings(t *testing.T) {
	v, err := lowercaseVariant.Coerce("abc")
	require.NoError(t, err)
	require.Equal(t, lowercase("abc"), v)

	_, err = lowercaseVariant.Coerce("abc1")

	var ve *restring.ValidationError

	require.ErrorAs(t, err, &ve)
}

func TestCoerceRevalidatesOtherVariants(t *testing.T) {
	d := digitsVariant.MustParse("123")

	// a digits value is not in the lowercase language
	_, err := lowercaseVariant.Coerce(d)

	var ve *restring.ValidationError

	require.ErrorAs(t, err, &ve)
	require.Equal(t, "123", ve.Value)

	// but any other variant coerces into the default one
	v, err := restring.Any.Coerce(d)
	require.NoError(t, err)
	require.Equal(t, restring.Text("123"), v)
}

func TestCoerceRejectsNonStrings(t *testing.T) {
	_, err := lowercaseVariant.Coerce(123)
	require.Error(t, err)

	var ve *restring.ValidationError

	require.False(t, errors.As(err, &ve))
}

func TestVariantAccessors(t *testing.T) {
	require.Equal(t, "lowercase", lowercaseVariant.Name())
	require.Equal(t, `\A(?:[a-z]+)\z`, lowercaseVariant.Pattern())
}
