package records

import "github.com/edubars/barskema"

// UnlockedDiscipline is a subject the account can open charts for.
type UnlockedDiscipline struct {
	ID   int
	Name string
}

var UnlockedDisciplineSchema = barskema.NewSchema("UnlockedDiscipline",
	barskema.Int("id", func(d *UnlockedDiscipline) *int { return &d.ID }),
	barskema.String("name", func(d *UnlockedDiscipline) *string { return &d.Name }),
)

// AccountInfo is returned by the visualization endpoint. The portal names
// PupilID "pupil_id".
type AccountInfo struct {
	ChartsURLs         barskema.Value
	Disciplines        []UnlockedDiscipline
	PeriodBegin        string
	PeriodEnd          string
	PupilID            int
	StudentIDParamName string
}

var AccountInfoSchema = barskema.NewSchema("AccountInfo",
	barskema.Any("charts_urls", func(a *AccountInfo) *barskema.Value { return &a.ChartsURLs }),
	barskema.ObjectList("disciplines", UnlockedDisciplineSchema, func(a *AccountInfo) *[]UnlockedDiscipline { return &a.Disciplines }),
	barskema.String("period_begin", func(a *AccountInfo) *string { return &a.PeriodBegin }),
	barskema.String("period_end", func(a *AccountInfo) *string { return &a.PeriodEnd }),
	barskema.Int("pupilid", func(a *AccountInfo) *int { return &a.PupilID }),
	barskema.String("student_id_param_name", func(a *AccountInfo) *string { return &a.StudentIDParamName }),
).
	Prepare(StepRenamePupilID, renameKey("pupil_id", "pupilid")).
	Export(StepRenamePupilID, exportKey("pupilid", "pupil_id"))

// PupilInfo is the profile of the logged-in user and the selected pupil.
type PupilInfo struct {
	AuthUserProfileID      int
	ChildrenPersons        []int
	Indicators             barskema.Value
	SelectedPupilAvaURL    string
	SelectedPupilClassyear string
	SelectedPupilID        int
	SelectedPupilIsMale    bool
	SelectedPupilName      string
	SelectedPupilSchool    string
	UserAvaURL             string
	UserDesc               string
	UserFullname           string
	UserHasAva             bool
	UserIsMale             bool
}

var PupilInfoSchema = barskema.NewSchema("PupilInfo",
	barskema.Int("auth_user_profile_id", func(p *PupilInfo) *int { return &p.AuthUserProfileID }),
	barskema.Ints("children_persons", func(p *PupilInfo) *[]int { return &p.ChildrenPersons }),
	barskema.Any("indicators", func(p *PupilInfo) *barskema.Value { return &p.Indicators }),
	barskema.String("selected_pupil_ava_url", func(p *PupilInfo) *string { return &p.SelectedPupilAvaURL }).Nullable(),
	barskema.String("selected_pupil_classyear", func(p *PupilInfo) *string { return &p.SelectedPupilClassyear }),
	barskema.Int("selected_pupil_id", func(p *PupilInfo) *int { return &p.SelectedPupilID }),
	barskema.Bool("selected_pupil_is_male", func(p *PupilInfo) *bool { return &p.SelectedPupilIsMale }),
	barskema.String("selected_pupil_name", func(p *PupilInfo) *string { return &p.SelectedPupilName }),
	barskema.String("selected_pupil_school", func(p *PupilInfo) *string { return &p.SelectedPupilSchool }),
	barskema.String("user_ava_url", func(p *PupilInfo) *string { return &p.UserAvaURL }).Nullable(),
	barskema.String("user_desc", func(p *PupilInfo) *string { return &p.UserDesc }).Nullable(),
	barskema.String("user_fullname", func(p *PupilInfo) *string { return &p.UserFullname }),
	barskema.Bool("user_has_ava", func(p *PupilInfo) *bool { return &p.UserHasAva }),
	barskema.Bool("user_is_male", func(p *PupilInfo) *bool { return &p.UserIsMale }),
)
