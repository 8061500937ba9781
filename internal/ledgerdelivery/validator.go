package ledgerdelivery

import (
	"github.com/go-playground/validator/v10"

	"github.com/bpnbank/bpn-bank/internal/domain"
	"github.com/bpnbank/bpn-bank/pkg/instrumentpkg"
)

// ValidInstrument checks that a request field names a tracked instrument.
var ValidInstrument validator.Func = func(fl validator.FieldLevel) bool {
	if symbol, ok := fl.Field().Interface().(string); ok {
		return instrumentpkg.IsTracked(symbol)
	}

	return false
}

// ValidFrequency checks that a request field names a supported payment frequency.
var ValidFrequency validator.Func = func(fl validator.FieldLevel) bool {
	if frequency, ok := fl.Field().Interface().(string); ok {
		_, err := domain.Frequency(frequency).Threshold()
		return err == nil
	}

	return false
}
