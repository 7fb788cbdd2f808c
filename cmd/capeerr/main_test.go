package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Setenv("HOME", t.TempDir())

	buf := new(bytes.Buffer)
	root := newRootCmd()
	root.SetOut(buf)
	root.SetErr(buf)
	err := execute(root, append(args, "--color", "never"))
	return buf.String(), err
}

func Test_Version(t *testing.T) {
	out, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "capeerr version dev")
	require.Contains(t, out, "CAPE-OPEN codes: 26")
}

func Test_Explain(t *testing.T) {
	tests := []string{"0x80040507", "2147747079", "-2147220217", "ECapeOutOfBoundsHR", "ECapeOutOfBounds"}

	for _, code := range tests {
		t.Run(code, func(t *testing.T) {
			require := require.New(t)

			out, err := executeCommand(t, "explain", code, "-o", "json")
			require.NoError(err)

			var info codeInfo
			require.NoError(json.Unmarshal([]byte(out), &info))
			require.Equal("0x80040507", info.Code)
			require.Equal(int32(-2147220217), info.Value)
			require.Equal("ECapeOutOfBoundsHR", info.Symbol)
			require.Equal("ECapeOutOfBounds", info.Interface)
			require.Equal([]string{"ECapeOutOfBounds", "ECapeBadArgument", "ECapeData"}, info.Lineage)
			require.Equal([]string{"argument", "boundaries"}, info.Traits)
			require.Equal([]string{"position", "lower_bound", "upper_bound", "value", "type"}, info.Payload)
		})
	}
}

func Test_ExplainTable(t *testing.T) {
	out, err := executeCommand(t, "explain", "0x80040511")
	require.NoError(t, err)
	require.Contains(t, out, "ECapeBadInvOrder")
	require.Contains(t, out, "ECapeBadInvOrder < ECapeComputation")
	require.Contains(t, out, "requested_operation")
}

func Test_ExplainRejects(t *testing.T) {
	_, err := executeCommand(t, "explain", "not-a-code")
	require.Error(t, err)

	_, err = executeCommand(t, "explain", "0x80040600")
	require.True(t, errors.IsNotFound(err))

	_, err = executeCommand(t, "explain")
	require.Error(t, err)
}

func Test_List(t *testing.T) {
	out, err := executeCommand(t, "list", "-o", "yaml")
	require.NoError(t, err)

	var rows []codeInfo
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 26)
	require.Equal(t, "0x80040501", rows[0].Code)
	require.Equal(t, "ECapeUnknown", rows[0].Interface)
	require.Equal(t, "0x8004051A", rows[25].Code)
	require.Equal(t, "ECapeThrmPropertyNotAvailable", rows[25].Interface)
}

func Test_ListUnder(t *testing.T) {
	out, err := executeCommand(t, "list", "--under", "ECapeBadArgument", "-o", "json")
	require.NoError(t, err)

	var rows []codeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rows))

	var interfaces []string
	for _, row := range rows {
		interfaces = append(interfaces, row.Interface)
	}
	require.Equal(t, []string{"ECapeBadArgument", "ECapeInvalidArgument", "ECapeOutOfBounds"}, interfaces)
}

func Test_SignedDecimalCodes(t *testing.T) {
	out, err := executeCommand(t, "list", "--under", "-2147220219", "-o", "json")
	require.NoError(t, err)

	var rows []codeInfo
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	require.Equal(t, "ECapeBadArgument", rows[0].Interface)

	out, err = executeCommand(t, "translate", "-2147220217", "-o", "json")
	require.NoError(t, err)

	var result translation
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "ECapeOutOfBounds", result.Interface)
}

func Test_ListTable(t *testing.T) {
	out, err := executeCommand(t, "list", "--under", "ECapePersistence")
	require.NoError(t, err)
	require.Contains(t, out, "CODE")
	require.Contains(t, out, "ECapePersistenceNotFoundHR")
	require.NotContains(t, out, "ECapeData")
}

func Test_Translate(t *testing.T) {
	require := require.New(t)

	out, err := executeCommand(t, "translate", "0x80040508", "not", "implemented", "-o", "json")
	require.NoError(err)

	var result translation
	require.NoError(json.Unmarshal([]byte(out), &result))
	require.Equal("0x80040508", result.Code)
	require.Equal("ECapeImplementation", result.Interface)
	require.Equal("CAPE-OPEN component", result.Name)
	require.Equal("not implemented (0x80040508)", result.Description)

	out, err = executeCommand(t, "translate", "0x80049999", "-o", "json")
	require.NoError(err)
	require.NoError(json.Unmarshal([]byte(out), &result))
	require.Equal("ECapeUnknown", result.Interface)
	require.Empty(result.Trace)
}

func Test_TranslateTrace(t *testing.T) {
	require := require.New(t)

	out, err := executeCommand(t, "translate", "0x80040510", "--trace", "-o", "json")
	require.NoError(err)

	var result translation
	require.NoError(json.Unmarshal([]byte(out), &result))
	require.Equal("ECapeSolvingError", result.Interface)
	require.Contains(result.Trace, "gateway.Translate")
	require.Contains(result.Trace, "gateway.go:")
	require.NotContains(result.Trace, "/gateway.go")
}

func Test_Config(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "capeerr.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output:\n  format: json\n"), 0o600))

		out, err := executeCommand(t, "explain", "0x80040501", "--config", path)
		require.NoError(t, err)
		require.Contains(t, out, `"interface": "ECapeUnknown"`)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("CAPEERR_OUTPUT_FORMAT", "yaml")

		out, err := executeCommand(t, "explain", "0x80040501")
		require.NoError(t, err)
		require.Contains(t, out, "interface: ECapeUnknown")
	})

	t.Run("FlagOverridesEnvironment", func(t *testing.T) {
		t.Setenv("CAPEERR_OUTPUT_FORMAT", "yaml")

		out, err := executeCommand(t, "explain", "0x80040501", "-o", "json")
		require.NoError(t, err)
		require.Contains(t, out, `"interface": "ECapeUnknown"`)
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := executeCommand(t, "version", "--config", filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})
}

func Test_ConfigRejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"OutputFormat", []string{"version", "-o", "xml"}},
		{"LogLevel", []string{"version", "--log-level", "loud"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := executeCommand(t, test.args...)
			require.True(t, errors.IsNotValid(err))
		})
	}
}
