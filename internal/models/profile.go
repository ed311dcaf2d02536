package models

// Profile is the public view of a user together with their skills.
type Profile struct {
	User
	Skills []UserSkill `json:"skills"`
}

// Assignment is a single column update of a partial write.
type Assignment struct {
	Column string
	Value  any
}

// ProfilePatch is a partial profile update. A nil field is absent.
type ProfilePatch struct {
	Fullname     *string
	Bio          *string
	Location     *string
	Website      *string
	GithubURL    *string
	LinkedinURL  *string
	HourlyRate   *float64
	Availability *Availability
}

// Assignments translates the present fields into column updates.
// The column list is an allowlist: new profile fields must be added here.
func (p ProfilePatch) Assignments() []Assignment {
	var out []Assignment
	if p.Fullname != nil {
		out = append(out, Assignment{Column: "fullname", Value: *p.Fullname})
	}
	if p.Bio != nil {
		out = append(out, Assignment{Column: "bio", Value: *p.Bio})
	}
	if p.Location != nil {
		out = append(out, Assignment{Column: "location", Value: *p.Location})
	}
	if p.Website != nil {
		out = append(out, Assignment{Column: "website", Value: *p.Website})
	}
	if p.GithubURL != nil {
		out = append(out, Assignment{Column: "github_url", Value: *p.GithubURL})
	}
	if p.LinkedinURL != nil {
		out = append(out, Assignment{Column: "linkedin_url", Value: *p.LinkedinURL})
	}
	if p.HourlyRate != nil {
		out = append(out, Assignment{Column: "hourly_rate", Value: *p.HourlyRate})
	}
	if p.Availability != nil {
		out = append(out, Assignment{Column: "availability", Value: string(*p.Availability)})
	}
	return out
}

// IsEmpty reports whether no field is present.
func (p ProfilePatch) IsEmpty() bool {
	return len(p.Assignments()) == 0
}
