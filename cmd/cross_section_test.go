package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/flownorm/internal/domain"
	m "github.com/mouse-blink/flownorm/internal/model"
)

func TestCrossSectionCmd(t *testing.T) {
	mockNormalizer := withMockNormalizer(t, defaultConfig())

	mockNormalizer.EXPECT().CrossSection(mock.MatchedBy(func(args domain.CrossSectionArgs) bool {
		return args.Input == "part.gcode" &&
			args.NozzleDiameter == 0.4 &&
			args.FilamentDiameter == 0 &&
			args.Policy == m.PolicyMin &&
			args.Target == 1 &&
			args.UseFilamentArea
	})).Return(m.Result{}, nil)

	cmd := newTestRootCmd(newCrossSectionCmd())
	cmd.SetArgs([]string{"cross-section", "part.gcode", "0.4", "-p", "min", "-t", "1", "--filament-area"})

	require.NoError(t, cmd.Execute())
}

func TestCrossSectionCmd_InheritsPersistentFlags(t *testing.T) {
	mockNormalizer := withMockNormalizer(t, defaultConfig())

	mockNormalizer.EXPECT().CrossSection(mock.MatchedBy(func(args domain.CrossSectionArgs) bool {
		return args.DryRun && args.Decimals == -1
	})).Return(m.Result{}, nil)

	cmd := newTestRootCmd(newCrossSectionCmd())
	cmd.SetArgs([]string{"cross-section", "part.gcode", "--dry-run", "--decimals=-1"})

	require.NoError(t, cmd.Execute())
}

func TestNewCrossSectionCmd(t *testing.T) {
	cmd := newCrossSectionCmd()

	assert.Equal(t, "cross-section [input.gcode] [nozzle-diameter] [filament-diameter]", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("policy"))
	assert.NotNil(t, cmd.Flags().Lookup("target"))
}
