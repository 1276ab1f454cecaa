package argvopts

import (
	"net/netip"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type scriptOptions struct {
	Verbose  bool          `opts:"verbose,v"`
	Limit    int           `opt:"limit"`
	Ratio    float64       `opt:"ratio"`
	Name     *string       `opt:"name"`
	Password string        `opt:"password"`
	Timeout  time.Duration `opt:"timeout"`
	Include  []string      `opt:"include"`
	Addr     netip.Addr    `opt:"addr"`
	Log      struct {
		Level  string `opt:"level" optRequired:"true"`
		Format string `opt:"format"`
	} `optPrefix:"log-"`
}

func TestDecode(t *testing.T) {
	t.Parallel()

	options, positional := Normalize([]string{
		"--v", "--limit=3", "--ratio=2", "--name=report", "--password=007", "--timeout=1m30s",
		"--include=a", "file", "--include=b", "--addr=127.0.0.1", "--log-level=debug", "--log_format=json",
		"--extra=1",
	})
	require.Equal(t, []string{"file"}, positional)

	var res scriptOptions
	unknown, err := Decode(options, &res)
	require.NoError(t, err)
	require.Equal(t, Options{{Name: "extra", Value: Int(1)}}, unknown)

	require.True(t, res.Verbose)
	require.Equal(t, 3, res.Limit)
	require.Equal(t, 2.0, res.Ratio)
	require.NotNil(t, res.Name)
	require.Equal(t, "report", *res.Name)
	require.Equal(t, "007", res.Password)
	require.Equal(t, 90*time.Second, res.Timeout)
	require.Equal(t, []string{"a", "b"}, res.Include)
	require.Equal(t, netip.MustParseAddr("127.0.0.1"), res.Addr)
	require.Equal(t, "debug", res.Log.Level)
	require.Equal(t, "json", res.Log.Format)
}

func TestDecode_LastWins(t *testing.T) {
	t.Parallel()

	options, _ := Normalize([]string{"--log-level=info", "--limit=1", "--limit=2", "--log-level=warn"})
	var res scriptOptions
	_, err := Decode(options, &res)
	require.NoError(t, err)
	require.Equal(t, 2, res.Limit)
	require.Equal(t, "warn", res.Log.Level)
	require.Nil(t, res.Name)
	require.Empty(t, res.Include)
}

func TestDecode_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		args   []string
		target any
		expErr error
	}{
		{
			name:   "required",
			args:   []string{"--limit=1"},
			target: &scriptOptions{},
			expErr: ErrIsRequired,
		},
		{
			name:   "bool into int",
			args:   []string{"--log-level=x", "--limit"},
			target: &scriptOptions{},
			expErr: ErrValueType,
		},
		{
			name:   "string into bool",
			args:   []string{"--log-level=x", "--verbose=yes"},
			target: &scriptOptions{},
			expErr: ErrValueType,
		},
		{
			name:   "float into int",
			args:   []string{"--log-level=x", "--limit=1.5"},
			target: &scriptOptions{},
			expErr: ErrValueType,
		},
		{
			name:   "bad duration",
			args:   []string{"--log-level=x", "--timeout=soon"},
			target: &scriptOptions{},
			expErr: ErrValueType,
		},
		{
			name:   "multiple aliases",
			args:   []string{"--log-level=x", "--verbose", "--v"},
			target: &scriptOptions{},
			expErr: ErrMultipleAliases,
		},
		{
			name: "redefined",
			target: &struct {
				A string `opt:"a-b"`
				B string `opt:"a_b"`
			}{},
			expErr: ErrOptionRedefined,
		},
		{
			name: "uint overflow",
			args: []string{"--n=300"},
			target: &struct {
				N uint8 `opt:"n"`
			}{},
			expErr: ErrValueType,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			options, _ := Normalize(tc.args)
			_, err := Decode(options, tc.target)
			require.ErrorIs(t, err, tc.expErr)
		})
	}
}

func TestDecode_InvalidTarget(t *testing.T) {
	t.Parallel()

	var notStruct int
	_, err := Decode(nil, &notStruct)
	require.Error(t, err)

	_, err = Decode(nil, scriptOptions{})
	require.Error(t, err)

	_, err = Decode(nil, &struct {
		C chan int `opt:"c"`
	}{})
	require.Error(t, err)

	_, err = Decode(nil, &struct {
		A string `opt:"a" optPrefix:"x"`
	}{})
	require.Error(t, err)

	_, err = Decode(nil, &struct {
		A string `optRequired:"true"`
	}{})
	require.Error(t, err)

	_, err = Decode(nil, &struct {
		A string `opt:"a" optRequired:"maybe"`
	}{})
	require.Error(t, err)
}
