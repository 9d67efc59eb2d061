package generator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beesaferoot/property-seed/internal/errs"
	"github.com/beesaferoot/property-seed/internal/random"
)

func recordingStage(name string, ran *[]string, needs ...string) Stage {
	return Stage{
		Name:  name,
		Needs: needs,
		Run: func() (int, error) {
			*ran = append(*ran, name)
			return 1, nil
		},
	}
}

func TestPlan_RunFollowsDependencies(t *testing.T) {
	var ran []string
	p := NewPlan()
	require.NoError(t, p.Register(recordingStage("rent", &ran, "guests")))
	require.NoError(t, p.Register(recordingStage("apartments", &ran)))
	require.NoError(t, p.Register(recordingStage("guests", &ran, "apartments")))
	require.NoError(t, p.Register(recordingStage("brokers", &ran)))

	order, err := p.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"apartments", "brokers", "guests", "rent"}, order)

	require.NoError(t, p.Run())
	assert.Equal(t, order, ran)
	assert.Equal(t, order, p.CompletedStages())
	assert.True(t, p.Completed("rent"))
}

func TestPlan_OrderPlacesOneLevelAtATime(t *testing.T) {
	var ran []string
	p := NewPlan()
	require.NoError(t, p.Register(recordingStage("apartments", &ran)))
	require.NoError(t, p.Register(recordingStage("property_owners", &ran, "apartments")))
	require.NoError(t, p.Register(recordingStage("employees", &ran)))
	require.NoError(t, p.Register(recordingStage("wps", &ran, "employees")))
	require.NoError(t, p.Register(recordingStage("cheques", &ran, "property_owners")))

	order, err := p.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"apartments", "employees", "property_owners", "wps", "cheques"}, order)
}

func TestPlan_RunStageRejectsMissingUpstream(t *testing.T) {
	var ran []string
	p := NewPlan()
	require.NoError(t, p.Register(recordingStage("apartments", &ran)))
	require.NoError(t, p.Register(recordingStage("guests", &ran, "apartments")))

	err := p.RunStage("guests")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
	assert.Empty(t, ran)
	assert.False(t, p.Completed("guests"))

	require.NoError(t, p.RunStage("apartments"))
	require.NoError(t, p.RunStage("guests"))
	assert.Equal(t, []string{"apartments", "guests"}, ran)

	err = p.RunStage("guests")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
}

func TestPlan_RunSkipsCompletedStages(t *testing.T) {
	var ran []string
	p := NewPlan()
	require.NoError(t, p.Register(recordingStage("apartments", &ran)))
	require.NoError(t, p.Register(recordingStage("guests", &ran, "apartments")))

	require.NoError(t, p.RunStage("apartments"))
	require.NoError(t, p.Run())
	assert.Equal(t, []string{"apartments", "guests"}, ran)
}

func TestPlan_RejectsBadGraphs(t *testing.T) {
	var ran []string

	p := NewPlan()
	require.NoError(t, p.Register(recordingStage("a", &ran, "b")))
	require.NoError(t, p.Register(recordingStage("b", &ran, "a")))
	err := p.Run()
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Contains(t, err.Error(), "cycle")

	p = NewPlan()
	require.NoError(t, p.Register(recordingStage("a", &ran, "missing")))
	_, err = p.Order()
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	err = p.Register(recordingStage("a", &ran))
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))

	err = p.RunStage("nope")
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument))
	assert.Empty(t, ran)
}

func TestPlan_StageErrorStopsRun(t *testing.T) {
	var ran []string
	boom := errs.DataIntegrity("apartments", "boom")

	p := NewPlan()
	require.NoError(t, p.Register(Stage{Name: "apartments", Run: func() (int, error) { return 0, boom }}))
	require.NoError(t, p.Register(recordingStage("guests", &ran, "apartments")))

	err := p.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage apartments")
	assert.Empty(t, ran)
	assert.False(t, p.Completed("apartments"))
}

func TestGenerator_PlanRejectsEarlyStage(t *testing.T) {
	g, err := New(DefaultOptions(), random.New(1), testNow)
	require.NoError(t, err)

	err = g.Plan().RunStage("cheques")
	assert.True(t, errors.Is(err, errs.ErrDataIntegrity))
	assert.Empty(t, g.Dataset().Cheques)

	for _, name := range []string{"apartments", "property_owners", "property_registrations", "cheques"} {
		require.NoError(t, g.Plan().RunStage(name))
	}
	assert.NotEmpty(t, g.Dataset().Cheques)
	assert.Empty(t, g.Dataset().Guests)

	ds, err := g.Generate()
	require.NoError(t, err)
	assert.NoError(t, Verify(ds))
}
