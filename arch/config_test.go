package arch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/memlogic/compile"
)

func TestParseAmbitConfig(t *testing.T) {
	cfg, err := ParseAmbitConfig(strings.NewReader(
		"t_rows: 6\ndcc_rows: 4\naap_cost: 1.5\ntra_cost: 2\n"))
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.TRows)
	assert.Equal(t, 4, cfg.DCCRows)
	assert.Equal(t, 1.5, cfg.AAPCost)
	assert.Equal(t, 2.0, cfg.TRACost)
}

func TestParseAmbitConfig_PartialKeepsDefaults(t *testing.T) {
	cfg, err := ParseAmbitConfig(strings.NewReader("t_rows: 9\n"))
	require.NoError(t, err)
	assert.Equal(t, 9, cfg.TRows)
	assert.Equal(t, DefaultAmbitConfig().DCCRows, cfg.DCCRows)
}

func TestParseAmbitConfig_Empty(t *testing.T) {
	cfg, err := ParseAmbitConfig(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultAmbitConfig(), cfg)
}

func TestParseAmbitConfig_Invalid(t *testing.T) {
	_, err := ParseAmbitConfig(strings.NewReader("t_rows: 2\n"))
	assert.ErrorIs(t, err, ErrAmbitConfig)

	_, err = ParseAmbitConfig(strings.NewReader("dcc_rows: 0\n"))
	assert.ErrorIs(t, err, ErrAmbitConfig)

	_, err = ParseAmbitConfig(strings.NewReader("aap_cost: -1\n"))
	assert.ErrorIs(t, err, ErrAmbitConfig)
}

func TestParseAmbitConfig_UnknownField(t *testing.T) {
	_, err := ParseAmbitConfig(strings.NewReader("rows: 8\n"))
	assert.Error(t, err)
}

func TestAmbit_RejectsInvalidConfig(t *testing.T) {
	_, err := Ambit(AmbitConfig{TRows: 1, DCCRows: 1, AAPCost: 1, TRACost: 1})
	assert.ErrorIs(t, err, ErrAmbitConfig)
}

func TestLoadAmbitConfig_MissingFile(t *testing.T) {
	_, err := LoadAmbitConfig("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestAmbitConfig_CostsReachStatistics(t *testing.T) {
	cheap, err := Ambit(DefaultAmbitConfig())
	require.NoError(t, err)
	pricey, err := Ambit(AmbitConfig{TRows: 3, DCCRows: 2, AAPCost: 10, TRACost: 10})
	require.NoError(t, err)

	run := func(svc compile.Service) compile.Statistics {
		stats, prog, err := compile.Compile(xorChain(), compile.Settings{}, svc)
		require.NoError(t, err)
		prog.Release()
		return stats
	}
	cheapStats, priceyStats := run(cheap), run(pricey)
	assert.Equal(t, cheapStats.NumInstructions, priceyStats.NumInstructions)
	assert.Greater(t, priceyStats.Cost, cheapStats.Cost)
}
