package config

import (
	"fmt"

	"github.com/alexisbeaulieu97/reszplay/internal/playground"
	reszerrors "github.com/alexisbeaulieu97/reszplay/pkg/errors"
)

// ValidateDocument performs structural and cross-field validation on a document.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return reszerrors.NewValidationError("document", "document is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(doc); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Handles))
	for i, h := range doc.Handles {
		if first, ok := seen[h]; ok {
			return reszerrors.NewValidationError(fmt.Sprintf("handles[%d]", i),
				fmt.Sprintf("duplicate handle %q (first at handles[%d])", h, first), nil)
		}
		seen[h] = i
	}

	if doc.Spring != "" && doc.Spring != string(playground.SpringCustom) && doc.hasSpringParams() {
		return reszerrors.NewValidationError("spring",
			fmt.Sprintf("tension, friction and mass require spring: custom, got %q", doc.Spring), nil)
	}

	if doc.Min != nil && doc.Max != nil && doc.Min.Enabled && doc.Max.Enabled {
		if err := compareBounds("width", doc.Min.Width, doc.Max.Width); err != nil {
			return err
		}
		if err := compareBounds("height", doc.Min.Height, doc.Max.Height); err != nil {
			return err
		}
	}

	return nil
}

func compareBounds(axis string, lower, upper *float64) error {
	if lower == nil || upper == nil || *lower <= *upper {
		return nil
	}
	return reszerrors.NewValidationError("min."+axis,
		fmt.Sprintf("min %s %v exceeds max %s %v", axis, *lower, axis, *upper), nil)
}
