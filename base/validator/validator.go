package validator

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// IsValidAddress reports whether address is a well-formed hex address
func IsValidAddress(address string) bool {
	return common.IsHexAddress(address)
}

// Struct validates the exported fields of i against their validate tags
func Struct(i interface{}) error {
	if err := validate.Struct(i); err != nil {
		return err
	}
	return nil
}
