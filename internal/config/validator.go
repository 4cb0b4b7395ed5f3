package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	pperrors "github.com/alexisbeaulieu97/pageprice/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
			price, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
			return err == nil && !price.IsNegative()
		})

		validateInst = v
	})

	return validateInst
}

// ValidateCatalog performs schema validation and the cross-field checks the
// struct tags cannot express. Tier ordering and pricing invariants are
// enforced when the catalog is built into a table.
func ValidateCatalog(c *Catalog) error {
	if c == nil {
		return pperrors.NewValidationError("catalog", "catalog is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if len(c.Tiers) > MaxTiers {
		return pperrors.NewValidationError("tiers", fmt.Sprintf("at most %d tiers are supported, got %d", MaxTiers, len(c.Tiers)), nil)
	}

	if c.DefaultTier > len(c.Tiers) {
		return pperrors.NewValidationError("default_tier", fmt.Sprintf("default tier %d exceeds the %d tiers defined", c.DefaultTier, len(c.Tiers)), nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return pperrors.NewValidationError(field, msg, err)
	}

	return pperrors.NewValidationError("catalog", err.Error(), err)
}

// fieldName strips the root struct from the namespace, leaving the yaml path
// (e.g. "tiers[0].price").
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
