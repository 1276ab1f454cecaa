package cmdargs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArgs_MapEntries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		args   []string
		mapper func(token Entry) Entry
		expRes []string
	}{
		{
			name: "no args",
			args: []string{},
			mapper: func(token Entry) Entry {
				return token
			},
			expRes: []string(nil),
		},
		{
			name: "no changes",
			args: []string{"--s=some", "file", "--", "abc"},
			mapper: func(token Entry) Entry {
				return token
			},
			expRes: []string{"--s=some", "file", "--", "abc"},
		},
		{
			name: "replace terminator and rm passthrough",
			args: []string{"--s=some", "file", "--", "abc"},
			mapper: func(token Entry) Entry {
				if token.Kind() == EntryKindTerminator {
					return PassthroughEntry{"xyz", "123"}
				}
				if token.Kind() == EntryKindPassthrough {
					return nil
				}
				return token
			},
			expRes: []string{"--s=some", "xyz", "123"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			args := NewArgs(tc.args).WithTerminator(true)
			res := args.MapEntries(tc.mapper)
			require.Equal(t, tc.expRes, res.Args)
			require.True(t, res.HasTerminator())
		})
	}
}

func TestArgs_MapOptions(t *testing.T) {
	t.Parallel()

	argsArr := []string{"--s=some", "file", "--b", "--no-c", "--password=x", "--", "--rem"}

	testCases := []struct {
		name    string
		mapper  func(o OptionEntry) Entry
		expArgs []string
	}{
		{
			name: "no changes",
			mapper: func(o OptionEntry) Entry {
				return o
			},
			expArgs: argsArr,
		},
		{
			name: "change all",
			mapper: func(o OptionEntry) Entry {
				switch o.Name() {
				case "s":
					return o.WithNoValue(true)
				case "b":
					return o.WithValue("false")
				case "c":
					return o.WithNoValue(false).WithName("cc")
				case "password":
					return nil
				default:
					return o
				}
			},
			expArgs: []string{"--no-s", "file", "--b=false", "--cc", "--", "--rem"},
		},
		{
			name: "expand option",
			mapper: func(o OptionEntry) Entry {
				if o.Name() == "b" {
					return PassthroughEntry(append(o.TokenStrings(), "--new=val"))
				}
				return o
			},
			expArgs: []string{"--s=some", "file", "--b", "--new=val", "--no-c", "--password=x", "--", "--rem"},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			res := NewArgs(argsArr).WithTerminator(true).MapOptions(tc.mapper)
			require.Equal(t, tc.expArgs, res.Args)
		})
	}
}
