package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "lowercase address",
			address:    "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
			expIsValid: true,
		},
		{
			desc:       "checksummed address",
			address:    "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
			expIsValid: true,
		},
		{
			desc:       "too short",
			address:    "0xd8da6bf26964af9d7eed9e03e53415d37aa960",
			expIsValid: false,
		},
		{
			desc:       "not hex",
			address:    "magiceden",
			expIsValid: false,
		},
		{
			desc:       "empty",
			address:    "",
			expIsValid: false,
		},
	}

	for _, test := range tests {
		s.Equal(test.expIsValid, IsValidAddress(test.address), test.desc)
	}
}

func (s *ValidatorTestSuite) TestStruct() {
	type payload struct {
		Items []string `validate:"required,min=1"`
		Taker string   `validate:"required"`
	}

	s.NoError(Struct(&payload{Items: []string{"a"}, Taker: "0xabc"}))
	s.Error(Struct(&payload{Taker: "0xabc"}))
	s.Error(Struct(&payload{Items: []string{"a"}}))
}
