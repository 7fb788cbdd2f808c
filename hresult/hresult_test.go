package hresult_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avila-r/cape/hresult"
)

func Test_CapeOpenRange(t *testing.T) {
	require := require.New(t)

	codes := hresult.CapeOpen()
	require.Len(codes, 26)
	require.Equal("0x80040501", codes[0].Hex())
	require.Equal("0x80040507", hresult.OutOfBounds.Hex())
	require.Equal("0x8004051A", codes[len(codes)-1].Hex())

	seen := map[string]bool{}
	for _, code := range codes {
		require.True(code.Failed())
		require.True(code.IsCapeOpen())
		require.False(seen[code.String()], code.String())
		seen[code.String()] = true
	}

	require.False(hresult.E_FAIL.IsCapeOpen())
	require.True(hresult.S_OK.Succeeded())
}

func Test_Parse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected hresult.HRESULT
	}{
		{"Hex", "0x80040507", hresult.OutOfBounds},
		{"HexLower", "0x8004051a", hresult.ThrmPropertyNotAvailable},
		{"Unsigned", "2147747079", hresult.OutOfBounds},
		{"Signed", "-2147220217", hresult.OutOfBounds},
		{"Symbolic", "ECapeOutOfBoundsHR", hresult.OutOfBounds},
		{"SymbolicShort", "ecapebadinvorder", hresult.BadInvOrder},
		{"COM", "E_FAIL", hresult.E_FAIL},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			code, err := hresult.Parse(test.input)
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if code != test.expected {
				t.Errorf("expected %v, got %v", test.expected, code)
			}
		})
	}

	for _, bad := range []string{"", "0xZZ", "nope", "99999999999"} {
		if _, err := hresult.Parse(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func Test_FromError(t *testing.T) {
	require := require.New(t)

	require.Equal(hresult.S_OK, hresult.FromError(nil))
	require.Equal(hresult.E_FAIL, hresult.FromError(errors.New("plain")))

	com := hresult.New(hresult.TimeOut, "solver timed out")
	require.Equal(hresult.TimeOut, hresult.FromError(com))
	require.Equal(hresult.TimeOut, hresult.FromError(fmt.Errorf("call: %w", com)))
	require.Equal(hresult.NoImpl, hresult.FromError(hresult.NoImpl))
	require.Equal("solver timed out (0x8004050E)", com.Error())
}
