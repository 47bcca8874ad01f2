package scalarfield_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/isomesh/scalarfield"
)

// MutateSuite groups SetStep / SetBounds behavior around one counting
// generator, so resamples (and their absence) are observable.
type MutateSuite struct {
	suite.Suite
	calls int
	field *scalarfield.Field
}

func (s *MutateSuite) SetupTest() {
	s.calls = 0
	f, err := scalarfield.New(
		scalarfield.Linspace(0, 1, 3), // step 0.5
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Linspace(0, 1, 3),
		scalarfield.Analytic(func(x, y, z float64) float64 {
			s.calls++

			return x + 10*y + 100*z
		}),
	)
	require.NoError(s.T(), err)
	s.field = f
	require.Equal(s.T(), 27, s.calls, "construction samples every grid point once")
}

// TestStepChangesOneAxis: updating only y regenerates only the y array
// and triggers exactly one full resample over the new dimensions.
func (s *MutateSuite) TestStepChangesOneAxis() {
	before := s.calls
	err := s.field.SetStep(scalarfield.StepUpdate{Y: scalarfield.Ptr(0.25)})
	require.NoError(s.T(), err)

	require.Equal(s.T(), 3, s.field.Nx(), "x untouched")
	require.Equal(s.T(), 5, s.field.Ny(), "y regenerated over [0,1] with step 0.25")
	require.Equal(s.T(), 3, s.field.Nz(), "z untouched")
	require.Equal(s.T(), s.field.Len(), len(s.field.Values()))
	require.Equal(s.T(), 3*5*3, s.calls-before, "one full resample")

	// Spot-check a recomputed value against the generator.
	require.Equal(s.T(), s.field.X(2)+10*s.field.Y(3)+100*s.field.Z(1), s.field.At(2, 3, 1))
}

// TestStepNoopWhenUnchanged: supplying the current step must not resample.
func (s *MutateSuite) TestStepNoopWhenUnchanged() {
	before := s.calls
	err := s.field.SetStep(scalarfield.StepUpdate{X: scalarfield.Ptr(0.5)})
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, s.calls, "identical step is a no-op")
	require.Equal(s.T(), 3, s.field.Nx())
}

// TestStepInvalid: a non-positive step fails and leaves the field intact.
func (s *MutateSuite) TestStepInvalid() {
	before := s.field.Values()
	err := s.field.SetStep(scalarfield.StepUpdate{Z: scalarfield.Ptr(-0.1)})
	require.ErrorIs(s.T(), err, scalarfield.ErrAxisRange)
	require.Equal(s.T(), before, s.field.Values())
}

// TestBoundsChange: widening x regenerates x from its existing step.
func (s *MutateSuite) TestBoundsChange() {
	before := s.calls
	err := s.field.SetBounds(scalarfield.BoundsUpdate{XMax: scalarfield.Ptr(2.0)})
	require.NoError(s.T(), err)

	require.Equal(s.T(), 5, s.field.Nx(), "[0,2] at step 0.5")
	xmin, xmax, _, _, _, _ := s.field.Bounds()
	require.Equal(s.T(), 0.0, xmin)
	require.Equal(s.T(), 2.0, xmax)
	require.Equal(s.T(), 5*3*3, s.calls-before)
}

// TestBoundsNoopWhenUnchanged: supplying the current bounds must not resample.
func (s *MutateSuite) TestBoundsNoopWhenUnchanged() {
	before := s.calls
	err := s.field.SetBounds(scalarfield.BoundsUpdate{
		XMin: scalarfield.Ptr(0.0),
		XMax: scalarfield.Ptr(1.0),
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), before, s.calls)
}

// TestBoundsInvalid: an inverted range fails and leaves the field intact.
func (s *MutateSuite) TestBoundsInvalid() {
	err := s.field.SetBounds(scalarfield.BoundsUpdate{YMin: scalarfield.Ptr(5.0)})
	require.ErrorIs(s.T(), err, scalarfield.ErrAxisRange)
	require.Equal(s.T(), 3, s.field.Ny())
}

func TestMutateSuite(t *testing.T) {
	suite.Run(t, new(MutateSuite))
}

//----------------------------------------------------------------------------//
// Raw-values fields and atomicity
//----------------------------------------------------------------------------//

// TestMutateSampledField: resampling mutations on a raw-values field
// report ErrImmutableField and change nothing.
func TestMutateSampledField(t *testing.T) {
	raw := []float64{0, 0, 0, 0, 1, 1, 1, 1}
	f, err := scalarfield.New(
		scalarfield.Coords(0, 1),
		scalarfield.Coords(0, 1),
		scalarfield.Coords(0, 1),
		scalarfield.Sampled(raw),
	)
	require.NoError(t, err)

	require.ErrorIs(t, f.SetStep(scalarfield.StepUpdate{X: scalarfield.Ptr(0.1)}), scalarfield.ErrImmutableField)
	require.ErrorIs(t, f.SetBounds(scalarfield.BoundsUpdate{XMax: scalarfield.Ptr(9.0)}), scalarfield.ErrImmutableField)
	require.Equal(t, raw, f.Values(), "values untouched after rejected mutations")
	require.Equal(t, 2, f.Nx())
}

// TestMutateAtomicOnPanic: a generator that panics mid-resample must
// leave the field exactly as before the mutation.
func TestMutateAtomicOnPanic(t *testing.T) {
	boom := false
	f, err := scalarfield.New(
		scalarfield.Linspace(0, 1, 2),
		scalarfield.Linspace(0, 1, 2),
		scalarfield.Linspace(0, 1, 2),
		scalarfield.Analytic(func(x, y, z float64) float64 {
			if boom {
				panic("generator failure")
			}

			return x * y * z
		}),
	)
	require.NoError(t, err)
	wantValues := f.Values()
	wantXs := f.Xs()

	boom = true
	require.Panics(t, func() {
		_ = f.SetStep(scalarfield.StepUpdate{X: scalarfield.Ptr(0.25)})
	})

	require.Equal(t, wantValues, f.Values(), "values untouched after aborted resample")
	require.Equal(t, wantXs, f.Xs(), "axis untouched after aborted resample")
	require.Equal(t, 2, f.Nx())
}
