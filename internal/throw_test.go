package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleTriangulatePanicRecover(t *testing.T) {
	testFn := func(shouldThrow bool, shouldPanic bool) (err error) {
		defer func() {
			recoveredErr := HandleTriangulatePanicRecover(recover())
			if recoveredErr != nil {
				err = recoveredErr
			}
		}()

		if shouldThrow {
			fatalf("kaboom!")
		}

		if shouldPanic {
			panic("true panic")
		}

		return nil
	}

	t.Run("with throw", func(t *testing.T) {
		err := testFn(true, false)
		assert.EqualError(t, err, "kaboom!")
	})

	t.Run("with real panic", func(t *testing.T) {
		assert.Panics(t, func() {
			testFn(false, true)
		})
	})

	t.Run("no error", func(t *testing.T) {
		err := testFn(false, false)
		assert.NoError(t, err)
	})

	t.Run("runtime errors are not swallowed", func(t *testing.T) {
		assert.Panics(t, func() {
			defer func() {
				HandleTriangulatePanicRecover(recover())
			}()
			var v *Vertex
			_ = v.X
		})
	})
}

func TestTriangulate_NonFinite(t *testing.T) {
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		bad := bad
		assert.PanicsWithError(t, "cannot triangulate non-finite vertex "+Point{bad, 0}.String(), func() {
			Triangulate([]*Vertex{NewVertex(0, 0, 0), NewVertex(bad, 0, 1)})
		})
	}
}
