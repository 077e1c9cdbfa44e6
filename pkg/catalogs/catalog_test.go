package catalogs

import (
	stderrors "errors"
	"math"
	"testing"

	"github.com/agentstation/skymatch/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		ra      []float64
		dec     []float64
		wantErr error
	}{
		{
			name: "valid catalog",
			ra:   []float64{10.0, 10.5, 11.0},
			dec:  []float64{-5.0, 0.0, 5.0},
		},
		{
			name: "empty catalog",
			ra:   nil,
			dec:  nil,
		},
		{
			name: "single point",
			ra:   []float64{180.0},
			dec:  []float64{0.0},
		},
		{
			name:    "length mismatch",
			ra:      []float64{10.0, 11.0},
			dec:     []float64{-5.0},
			wantErr: errors.ErrShapeMismatch,
		},
		{
			name:    "NaN in ra",
			ra:      []float64{10.0, math.NaN()},
			dec:     []float64{-5.0, 5.0},
			wantErr: errors.ErrNonFiniteInput,
		},
		{
			name:    "infinity in dec",
			ra:      []float64{10.0, 11.0},
			dec:     []float64{-5.0, math.Inf(1)},
			wantErr: errors.ErrNonFiniteInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.ra, tt.dec)
			if tt.wantErr != nil {
				if !errors.IsValidationError(err) {
					t.Fatalf("New() error = %v, want validation error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if c.Len() != len(tt.ra) {
				t.Errorf("Len() = %d, want %d", c.Len(), len(tt.ra))
			}
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	ra := []float64{10.0, 20.0}
	dec := []float64{1.0, 2.0}
	c := MustNew(ra, dec)

	ra[0] = 99.0
	dec[1] = -99.0

	if c.RA(0) != 10.0 || c.Dec(1) != 2.0 {
		t.Error("catalog should be unaffected by mutation of constructor arguments")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustNew([]float64{10.0}, []float64{1.0})

	c.RAs()[0] = 99.0
	c.Decs()[0] = 99.0

	if c.RA(0) != 10.0 || c.Dec(0) != 1.0 {
		t.Error("mutating accessor results should not affect the catalog")
	}
}

func TestShift(t *testing.T) {
	c := MustNew([]float64{10.0, 20.0}, []float64{-1.0, 1.0})
	shifted := c.Shift(0.5, -0.25)

	// Original untouched.
	if c.RA(0) != 10.0 || c.Dec(0) != -1.0 {
		t.Error("Shift must not mutate the receiver")
	}

	wantRA := []float64{10.5, 20.5}
	wantDec := []float64{-1.25, 0.75}
	for i := 0; i < shifted.Len(); i++ {
		if shifted.RA(i) != wantRA[i] {
			t.Errorf("shifted.RA(%d) = %v, want %v", i, shifted.RA(i), wantRA[i])
		}
		if shifted.Dec(i) != wantDec[i] {
			t.Errorf("shifted.Dec(%d) = %v, want %v", i, shifted.Dec(i), wantDec[i])
		}
	}
}

func TestValidateNamesCatalog(t *testing.T) {
	c := Catalog{ra: []float64{1.0}, dec: []float64{math.NaN()}}
	err := c.Validate("catalog 2")
	if err == nil {
		t.Fatal("expected validation error")
	}

	var nf *errors.NonFiniteError
	if !stderrors.As(err, &nf) {
		t.Fatalf("error type = %T, want *errors.NonFiniteError", err)
	}
	if nf.Catalog != "catalog 2" || nf.Axis != "dec" || nf.Index != 0 {
		t.Errorf("unexpected error detail: %+v", nf)
	}
}
