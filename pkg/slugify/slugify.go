package slugify

import (
	"github.com/gosimple/slug"

	"estatehub_backend/pkg/errs"
)

// Make turns free text into a URL-safe slug: lower-case, diacritics stripped,
// runs of non-alphanumerics collapsed to single hyphens.
func Make(text string) (string, error) {
	s := slug.Make(text)
	if s == "" {
		return "", errs.Validationf("cannot derive slug from empty text")
	}
	return s, nil
}
