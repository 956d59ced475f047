package model

import "strings"

type Shop struct {
	Base
	BrandName *string
	Name      *string
	Address   *string
	URL       *string
	Notes     *string
}

// DisplayName joins the brand and branch names with a single space, falling
// back to whichever of the two is set.
func (s Shop) DisplayName() string {
	return ComposeDisplayName(s.BrandName, s.Name)
}

func ComposeDisplayName(brandName, name *string) string {
	brand := trimmed(brandName)
	branch := trimmed(name)

	switch {
	case brand != "" && branch != "":
		return brand + " " + branch
	case brand != "":
		return brand
	default:
		return branch
	}
}

func trimmed(value *string) string {
	if value == nil {
		return ""
	}

	return strings.TrimSpace(*value)
}
