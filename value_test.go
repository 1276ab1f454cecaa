package argvopts

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		text     string
		expected Value
	}{
		{text: "0", expected: Int(0)},
		{text: "42", expected: Int(42)},
		{text: "-7", expected: Int(-7)},
		{text: "+7", expected: Int(7)},
		{text: "017", expected: Int(17)},
		{text: "0x1F", expected: Int(31)},
		{text: "0b101", expected: Int(5)},
		{text: "0o17", expected: Int(15)},
		{text: "1.5", expected: Float(1.5)},
		{text: "-0.25", expected: Float(-0.25)},
		{text: "1e3", expected: Float(1000)},
		{text: ".5", expected: Float(0.5)},
		{text: "99999999999999999999", expected: String("99999999999999999999")},
		{text: "-99999999999999999999", expected: String("-99999999999999999999")},
		{text: "0xFFFFFFFFFFFFFFFFFF", expected: String("0xFFFFFFFFFFFFFFFFFF")},
		{text: "9223372036854775807", expected: Int(9223372036854775807)},
		{text: "99999999999999999999.0", expected: Float(1e20)},
		{text: "", expected: String("")},
		{text: "abc", expected: String("abc")},
		{text: "1.2.3", expected: String("1.2.3")},
		{text: "12abc", expected: String("12abc")},
		{text: "inf", expected: String("inf")},
		{text: "NaN", expected: String("NaN")},
		{text: "1e999", expected: String("1e999")},
		{text: " 1", expected: String(" 1")},
		{text: "true", expected: String("true")},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expected, ParseValue(tc.text), "text=%q", tc.text)
	}
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	b, ok := Bool(true).Bool()
	require.True(t, ok)
	require.True(t, b)
	_, ok = Bool(true).Str()
	require.False(t, ok)

	i, ok := Int(3).Int()
	require.True(t, ok)
	require.Equal(t, int64(3), i)

	f, ok := Int(3).Float()
	require.True(t, ok)
	require.Equal(t, 3.0, f)
	_, ok = String("3").Float()
	require.False(t, ok)

	require.True(t, Float(1).IsNumeric())
	require.False(t, String("1").IsNumeric())

	require.Equal(t, "true", Bool(true).Text())
	require.Equal(t, "-3", Int(-3).Text())
	require.Equal(t, "1.5", Float(1.5).Text())
	require.Equal(t, "x y", String("x y").Text())
	require.Equal(t, `"x y"`, String("x y").String())
	require.Equal(t, "string", KindString.String())
}

func TestValue_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Options{
		{Name: "a", Value: Bool(false)},
		{Name: "b", Value: Int(2)},
		{Name: "c", Value: Float(2.5)},
		{Name: "d", Value: String("2")},
	})
	require.NoError(t, err)
	require.JSONEq(t,
		`[{"name":"a","value":false},{"name":"b","value":2},{"name":"c","value":2.5},{"name":"d","value":"2"}]`,
		string(data),
	)
}
