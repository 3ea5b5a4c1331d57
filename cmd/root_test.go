package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/flownorm/internal/config"
	"github.com/mouse-blink/flownorm/internal/domain"
	domainmocks "github.com/mouse-blink/flownorm/internal/domain/mocks"
	m "github.com/mouse-blink/flownorm/internal/model"
)

// withMockNormalizer swaps the global normalizer and configuration loader
// for the duration of the test.
func withMockNormalizer(t *testing.T, loaded config.Config) *domainmocks.MockNormalizer {
	t.Helper()

	mockNormalizer := domainmocks.NewMockNormalizer(t)

	originalNormalizer, originalLoad, originalCfg := normalizer, loadConfig, cfg
	normalizer = mockNormalizer
	loadConfig = func() (*config.Config, error) {
		c := loaded
		return &c, nil
	}

	t.Cleanup(func() {
		normalizer, loadConfig, cfg = originalNormalizer, originalLoad, originalCfg
	})

	return mockNormalizer
}

func defaultConfig() config.Config {
	return config.Config{LogLevel: "info", Decimals: config.DefaultDecimals}
}

func newTestRootCmd(subcommands ...*cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	cmd.AddCommand(subcommands...)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRootCmd_PositionalArgs(t *testing.T) {
	mockNormalizer := withMockNormalizer(t, defaultConfig())

	mockNormalizer.EXPECT().CrossSection(mock.MatchedBy(func(args domain.CrossSectionArgs) bool {
		return args.Input == "part.gcode" &&
			args.NozzleDiameter == 0.4 &&
			args.FilamentDiameter == 1.75 &&
			args.Policy == m.PolicyMax &&
			args.Target == 2.5 &&
			args.Decimals == config.DefaultDecimals &&
			!args.UseFilamentArea &&
			!args.DryRun
	})).Return(m.Result{}, nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"part.gcode", "0.4", "1.75", "--policy", "MAX", "--target", "2.5"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_NoArgsUsesConfig(t *testing.T) {
	loaded := defaultConfig()
	loaded.NozzleDiameter = 0.6
	loaded.FilamentDiameter = 2.85
	loaded.Decimals = 1

	mockNormalizer := withMockNormalizer(t, loaded)

	mockNormalizer.EXPECT().CrossSection(mock.MatchedBy(func(args domain.CrossSectionArgs) bool {
		return args.Input == "" &&
			args.NozzleDiameter == 0.6 &&
			args.FilamentDiameter == 2.85 &&
			args.Decimals == 1 &&
			args.Policy == "" &&
			args.Target == 0
	})).Return(m.Result{}, nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	loaded := defaultConfig()
	loaded.NozzleDiameter = 0.6
	loaded.Decimals = 1

	mockNormalizer := withMockNormalizer(t, loaded)

	mockNormalizer.EXPECT().CrossSection(mock.MatchedBy(func(args domain.CrossSectionArgs) bool {
		return args.NozzleDiameter == 0.8 &&
			args.Decimals == 4 &&
			args.Report == "run.yaml" &&
			args.DryRun &&
			args.UseFilamentArea
	})).Return(m.Result{}, nil)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"part.gcode", "0.8", "--decimals", "4", "--report", "run.yaml", "--dry-run", "--filament-area"})

	require.NoError(t, cmd.Execute())
}

func TestRootCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"nozzle not a number", []string{"part.gcode", "wide"}},
		{"negative filament", []string{"part.gcode", "0.4", "-1.75"}},
		{"unknown policy", []string{"part.gcode", "--policy", "avg"}},
		{"too many arguments", []string{"part.gcode", "0.4", "1.75", "3"}},
		{"unknown log level", []string{"part.gcode", "--log-level", "chatty"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withMockNormalizer(t, defaultConfig())

			cmd := newTestRootCmd()
			cmd.SetArgs(tt.args)

			assert.Error(t, cmd.Execute())
		})
	}
}

func TestRootCmd_ConfigError(t *testing.T) {
	withMockNormalizer(t, defaultConfig())

	loadConfig = func() (*config.Config, error) {
		return nil, errors.New("FLOWNORM_DECIMALS: invalid syntax")
	}

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"part.gcode"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestRootCmd_PropagatesNormalizerError(t *testing.T) {
	mockNormalizer := withMockNormalizer(t, defaultConfig())

	mockNormalizer.EXPECT().CrossSection(mock.Anything).Return(m.Result{}, domain.ErrDegenerateExtrema)

	cmd := newTestRootCmd()
	cmd.SetArgs([]string{"empty.gcode", "0.4", "1.75"})

	require.ErrorIs(t, cmd.Execute(), domain.ErrDegenerateExtrema)
}

func TestParsePositional(t *testing.T) {
	input, values, err := parsePositional([]string{"a.gcode", "0.4"}, 2)
	require.NoError(t, err)
	assert.Equal(t, m.Path("a.gcode"), input)
	assert.Equal(t, []float64{0.4, 0}, values)

	input, values, err = parsePositional(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, input)
	assert.Equal(t, []float64{0}, values)

	_, _, err = parsePositional([]string{"a.gcode", "0"}, 1)
	require.ErrorIs(t, err, domain.ErrInvalidValue)
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "flownorm [input.gcode] [nozzle-diameter] [filament-diameter]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"decimals", "report", "dry-run", "log-level"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	for _, name := range []string{"policy", "target", "filament-area"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}
