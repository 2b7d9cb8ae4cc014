package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunProfile(t *testing.T) {
	profile := NewRunProfile()
	profile.Mark("inputs loaded")
	profile.Mark("scenarios assembled")
	profile.End()

	require.Len(t, profile.Events, 2)
	require.Equal(t, "inputs loaded", profile.Events[0].Name)
	require.Equal(t, "scenarios assembled", profile.Events[1].Name)
	require.GreaterOrEqual(t, profile.TotalMs, int64(0))

	contents, err := profile.ToJSONBytes()
	require.NoError(t, err)
	require.Contains(t, string(contents), `"totalMs"`)
	require.Contains(t, string(contents), `"name":"inputs loaded"`)
	require.Contains(t, string(contents), `"name":"scenarios assembled"`)
	require.NotContains(t, string(contents), "StartTime")
}
