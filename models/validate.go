package models

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

/*
RegisterWithValidator register with the validator this custom validation support

	@param v *validator.Validate - the validator to register against
	@return whether successful
*/
func RegisterWithValidator(v *validator.Validate) error {
	if err := v.RegisterValidation(
		"registry_event_type", validateRegistryEventType,
	); err != nil {
		return err
	}

	if err := v.RegisterValidation(
		"failure_kind", validateFailureKindType,
	); err != nil {
		return err
	}

	return nil
}

func validateRegistryEventType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch RegistryEventTypeENUMType(fl.Field().String()) {
	case RegistryEventTypeCapsuleCreated:
		fallthrough
	case RegistryEventTypeCapsuleDisclosed:
		fallthrough
	case RegistryEventTypeCapsuleWithdrawn:
		fallthrough
	case RegistryEventTypeEnginePaused:
		fallthrough
	case RegistryEventTypeEngineUnpaused:
		return true
	}
	return false
}

func validateFailureKindType(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	switch FailureKindENUMType(fl.Field().String()) {
	case FailureKindPermissionDenied:
		fallthrough
	case FailureKindNotFound:
		fallthrough
	case FailureKindInvalidState:
		fallthrough
	case FailureKindInvalidArgument:
		fallthrough
	case FailureKindTimingViolation:
		fallthrough
	case FailureKindEnginePaused:
		return true
	}
	return false
}
