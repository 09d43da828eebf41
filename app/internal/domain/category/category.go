package category

import "strings"

// Name is the fixed set of catalog categories.
type Name string

const (
	NameTea         Name = "Tea"
	NameSpices      Name = "Spices"
	NameAyurveda    Name = "Ayurveda"
	NameNaturalCare Name = "Natural Care"
	NameGiftPacks   Name = "Gift Packs"
)

var names = []Name{NameTea, NameSpices, NameAyurveda, NameNaturalCare, NameGiftPacks}

// Names returns every category name in display order.
func Names() []Name {
	out := make([]Name, len(names))
	copy(out, names)
	return out
}

func (n Name) IsValid() bool {
	for _, v := range names {
		if v == n {
			return true
		}
	}
	return false
}

// Slug is the URL form of the name, e.g. "natural-care".
func (n Name) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(n)), " ", "-")
}

// ParseName accepts either the display name or the slug, ignoring case.
func ParseName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	for _, v := range names {
		if strings.EqualFold(string(v), s) || strings.EqualFold(v.Slug(), s) {
			return v, nil
		}
	}
	return "", ErrInvalidCategory
}

type Category struct {
	ID          string
	Name        Name
	Slug        string
	ImageURL    string
	Description string
}
