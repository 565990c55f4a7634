package primejudge

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJudge_InvalidDomain(t *testing.T) {
	for _, n := range []int64{1, 0, -1, -2, -97, math.MinInt64} {
		v := Judge(n)
		if v.Kind != Invalid {
			t.Errorf("Judge(%d): expected %v, got %v", n, Invalid, v.Kind)
		}
		assert.Empty(t, v.Factors)
	}
}

func TestJudge_Primes(t *testing.T) {
	for _, n := range []int64{2, 3, 5, 7, 13, 97, 7919, 2147483647} {
		v := Judge(n)
		if v.Kind != Prime {
			t.Errorf("Judge(%d): expected %v, got %v with factors %v", n, Prime, v.Kind, v.Factors)
		}
		assert.Nil(t, v.Factors)
		assert.Equal(t, n, v.Input)
	}
}

func TestJudge_Composites(t *testing.T) {
	cases := []struct {
		n       int64
		factors []int64
	}{
		{4, []int64{2}},
		{9, []int64{3}},
		{12, []int64{2, 3, 4, 6}},
		{16, []int64{2, 4, 8}},
		{36, []int64{2, 3, 4, 6, 9, 12, 18}},
		{49, []int64{7}},
		{100, []int64{2, 4, 5, 10, 20, 25, 50}},
	}
	for _, c := range cases {
		v := Judge(c.n)
		assert.Equal(t, Composite, v.Kind, "Judge(%d)", c.n)
		assert.Equal(t, c.factors, v.Factors, "Judge(%d)", c.n)
	}
}

func TestJudge_Idempotent(t *testing.T) {
	for _, n := range []int64{-5, 1, 2, 12, 97, 1001} {
		assert.Equal(t, Judge(n), Judge(n))
	}
}

func TestJudge_LargeInputsDoNotOverflow(t *testing.T) {
	// i*i would wrap around for int32 once i reaches 46341.
	assert.Nil(t, Factors(int32(math.MaxInt32)))
	assert.Equal(t, []int8{3, 7}, Factors(int8(21)))
	assert.Nil(t, Factors(int8(127)))
	assert.Equal(t, []int8{2, 3, 6, 7, 9, 14, 18, 21, 42, 63}, Factors(int8(126)))

	v := Judge(math.MaxInt32 - 1)
	assert.Equal(t, Composite, v.Kind)
	assert.Equal(t, int64(2), v.Factors[0])
	assert.Equal(t, int64((math.MaxInt32-1)/2), v.Factors[len(v.Factors)-1])
}

func TestFactors_AscendingWithoutDuplicates(t *testing.T) {
	for n := int64(2); n < 2000; n++ {
		factors := Factors(n)
		for i, f := range factors {
			if n%f != 0 || f == 1 || f == n {
				t.Fatalf("Factors(%d): %d is not a proper divisor", n, f)
			}
			if i > 0 && factors[i-1] >= f {
				t.Fatalf("Factors(%d): %v is not strictly ascending", n, factors)
			}
		}
	}
}

func TestVerdict_Messages(t *testing.T) {
	assert.Equal(t, "Number must be greater than 1", Judge(1).Message())
	assert.Equal(t, "97 is a prime number", Judge(97).Message())
	assert.Equal(t, "12 is a composite number", Judge(12).Message())
	assert.Equal(t, "2, 3, 4, 6", Judge(12).FactorList())
	assert.Equal(t, "Click 'Judge' to check the number", Verdict{}.Message())
	assert.Equal(t, "composite", Composite.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}
