package api

import (
	"errors"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"droscher.com/BrewLog/pkg/validation"
)

var (
	ErrValidatorEngine = errors.New("unexpected validator engine")

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidations installs the journal's field rules on gin's binding
// validator. It is safe to call more than once.
func RegisterValidations() error {
	registerOnce.Do(func() {
		engine, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = ErrValidatorEngine

			return
		}

		if registerErr = validation.Register(engine); registerErr != nil {
			return
		}

		validation.RequireAnyOf(engine, CreateShopRequest{}, "BrandName", "Name")
	})

	return registerErr
}
