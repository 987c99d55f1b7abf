package random

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RandomSuite struct {
	suite.Suite
}

func TestRandomSuite(t *testing.T) {
	suite.Run(t, new(RandomSuite))
}

func (s *RandomSuite) TestCryptoIntnInRange() {
	r := New()
	for i := 0; i < 100; i++ {
		n := r.Intn(7)
		s.GreaterOrEqual(n, 0)
		s.Less(n, 7)
	}
}

func (s *RandomSuite) TestIntnNonPositiveReturnsZero() {
	s.Equal(0, New().Intn(0))
	s.Equal(0, NewSeeded(1).Intn(-3))
}

func (s *RandomSuite) TestSeededIsDeterministic() {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		s.Equal(a.Intn(1000), b.Intn(1000))
	}
	s.Equal(a.String(12, "ABC"), b.String(12, "ABC"))
}

func (s *RandomSuite) TestStringUsesAlphabet() {
	str := NewSeeded(7).String(32, "XY")
	s.Len(str, 32)
	for _, c := range str {
		s.Contains("XY", string(c))
	}
	s.Empty(New().String(0, "XY"))
	s.Empty(New().String(5, ""))
}
