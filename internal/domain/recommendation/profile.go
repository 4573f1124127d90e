package recommendation

import (
	"strings"

	"github.com/mitchellh/mapstructure"
)

type looseUser struct {
	ID         string   `mapstructure:"id"`
	Name       string   `mapstructure:"name"`
	FullName   string   `mapstructure:"fullName"`
	Email      string   `mapstructure:"email"`
	Phone      string   `mapstructure:"phone"`
	Skills     []string `mapstructure:"skills"`
	Category   string   `mapstructure:"category"`
	Preferred  string   `mapstructure:"preferredCategory"`
	Location   string   `mapstructure:"location"`
	Experience *float64 `mapstructure:"experience"`
}

type looseCV struct {
	PersonalInfo struct {
		FullName string `mapstructure:"fullName"`
		Email    string `mapstructure:"email"`
		Phone    string `mapstructure:"phone"`
		Address  string `mapstructure:"address"`
	} `mapstructure:"personalInfo"`
	Skills     []string `mapstructure:"skills"`
	Experience *float64 `mapstructure:"experience"`
}

// BuildUserProfile shapes loosely typed user and CV objects into a profile.
// Skills default to an empty list and experience to 0. Values that cannot be
// decoded are ignored.
func BuildUserProfile(user map[string]any, cv map[string]any) UserProfile {
	var u looseUser
	decodeLoose(user, &u)

	var c looseCV
	decodeLoose(cv, &c)

	p := UserProfile{
		ID:       u.ID,
		Name:     firstNonBlank(u.Name, u.FullName, c.PersonalInfo.FullName),
		Email:    firstNonBlank(u.Email, c.PersonalInfo.Email),
		Phone:    firstNonBlank(u.Phone, c.PersonalInfo.Phone),
		Category: firstNonBlank(u.Category, u.Preferred),
		Location: strings.TrimSpace(u.Location),
	}

	switch {
	case len(u.Skills) > 0:
		p.Skills = nonBlank(u.Skills)
	case len(c.Skills) > 0:
		p.Skills = nonBlank(c.Skills)
	default:
		p.Skills = []string{}
	}

	exp := 0.0
	switch {
	case u.Experience != nil:
		exp = *u.Experience
	case c.Experience != nil:
		exp = *c.Experience
	}
	p.Experience = &exp

	return p
}

func decodeLoose(in map[string]any, out any) {
	if len(in) == 0 {
		return
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return
	}
	_ = dec.Decode(in)
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
