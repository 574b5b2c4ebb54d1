package factory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/wage-engine/factory"
	"github.com/warp/wage-engine/wage"
)

func TestParsePolicy_EmptyDocumentYieldsDefaults(t *testing.T) {
	f := factory.NewPolicyFactory()

	policy, err := f.ParsePolicy(`{}`)
	require.NoError(t, err)

	assert.Equal(t, wage.DefaultPolicy(), policy)
}

func TestParsePolicy_Overrides(t *testing.T) {
	f := factory.NewPolicyFactory()

	policy, err := f.ParsePolicy(`{
		"night_start_hour": 23,
		"night_end_hour": 6,
		"night_multiplier": 1.5,
		"bucket_minutes": 30
	}`)
	require.NoError(t, err)

	assert.Equal(t, 23.0, policy.NightStartHour)
	assert.Equal(t, 6.0, policy.NightEndHour)
	assert.True(t, policy.NightMultiplier.Equal(decimal.NewFromFloat(1.5)))
	assert.Equal(t, 0.5, policy.BucketHours)
}

func TestParsePolicy_PartialOverrideKeepsOtherDefaults(t *testing.T) {
	f := factory.NewPolicyFactory()

	policy, err := f.ParsePolicy(`{"night_multiplier": 2}`)
	require.NoError(t, err)

	assert.Equal(t, wage.DefaultNightStartHour, policy.NightStartHour)
	assert.Equal(t, wage.DefaultNightEndHour, policy.NightEndHour)
	assert.Equal(t, wage.DefaultBucketHours, policy.BucketHours)
	assert.True(t, policy.NightMultiplier.Equal(decimal.NewFromInt(2)))
}

func TestParsePolicy_RejectsInvalidDocuments(t *testing.T) {
	f := factory.NewPolicyFactory()

	cases := map[string]string{
		"malformed JSON":        `{night_start_hour: 22}`,
		"start hour too high":   `{"night_start_hour": 24}`,
		"negative end hour":     `{"night_end_hour": -1}`,
		"multiplier below one":  `{"night_multiplier": 0.8}`,
		"zero bucket":           `{"bucket_minutes": 0}`,
		"bucket above one hour": `{"bucket_minutes": 90}`,
	}

	for name, doc := range cases {
		_, err := f.ParsePolicy(doc)
		assert.Error(t, err, name)
	}
}

func TestToJSON_RoundTrip(t *testing.T) {
	f := factory.NewPolicyFactory()

	pj := factory.ToJSON(wage.DefaultPolicy())
	require.NotNil(t, pj.BucketMinutes)
	assert.Equal(t, 15, *pj.BucketMinutes)

	policy, err := f.FromJSON(pj)
	require.NoError(t, err)
	assert.Equal(t, wage.DefaultPolicy(), policy)
}
