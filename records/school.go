package records

import "github.com/edubars/barskema"

// Employee is a member of the school staff.
type Employee struct {
	Group        string
	Fullname     string
	Category     string
	EmployerJobs []string
	Male         bool
	Photo        string
}

var EmployeeSchema = barskema.NewSchema("Employee",
	barskema.String("group", func(e *Employee) *string { return &e.Group }).Nullable(),
	barskema.String("fullname", func(e *Employee) *string { return &e.Fullname }),
	barskema.String("category", func(e *Employee) *string { return &e.Category }).Nullable(),
	barskema.Strings("employer_jobs", func(e *Employee) *[]string { return &e.EmployerJobs }).Nullable(),
	barskema.Bool("male", func(e *Employee) *bool { return &e.Male }),
	barskema.String("photo", func(e *Employee) *string { return &e.Photo }).Nullable(),
)

// SchoolInfo describes the school. Photo and Ustav are portal-relative links.
type SchoolInfo struct {
	Name           string
	Address        string
	Phone          string
	SiteURL        string
	CountEmployees int
	CountPupils    int
	Photo          string
	Email          string
	Ustav          string
	Employees      []Employee
}

var SchoolInfoSchema = barskema.NewSchema("SchoolInfo",
	barskema.String("name", func(s *SchoolInfo) *string { return &s.Name }),
	barskema.String("address", func(s *SchoolInfo) *string { return &s.Address }).Nullable(),
	barskema.String("phone", func(s *SchoolInfo) *string { return &s.Phone }).Nullable(),
	barskema.String("site_url", func(s *SchoolInfo) *string { return &s.SiteURL }).Nullable(),
	barskema.Int("count_employees", func(s *SchoolInfo) *int { return &s.CountEmployees }),
	barskema.Int("count_pupils", func(s *SchoolInfo) *int { return &s.CountPupils }),
	barskema.String("photo", func(s *SchoolInfo) *string { return &s.Photo }).Nullable(),
	barskema.String("email", func(s *SchoolInfo) *string { return &s.Email }).Nullable(),
	barskema.String("ustav", func(s *SchoolInfo) *string { return &s.Ustav }).Nullable(),
	barskema.ObjectList("employees", EmployeeSchema, func(s *SchoolInfo) *[]Employee { return &s.Employees }),
)

// Pupil is a classmate.
type Pupil struct {
	Fullname string
	Male     bool
	Photo    string
}

var PupilSchema = barskema.NewSchema("Pupil",
	barskema.String("fullname", func(p *Pupil) *string { return &p.Fullname }),
	barskema.Bool("male", func(p *Pupil) *bool { return &p.Male }),
	barskema.String("photo", func(p *Pupil) *string { return &p.Photo }).Nullable(),
)

// ClassInfo describes the pupil's class.
type ClassInfo struct {
	StudyLevel      int
	Letter          string
	FormMaster      string
	FormMasterPhoto string
	FormMasterMale  bool
	Specialization  string
	Photo           string
	Pupils          []Pupil
}

var ClassInfoSchema = barskema.NewSchema("ClassInfo",
	barskema.Int("study_level", func(c *ClassInfo) *int { return &c.StudyLevel }),
	barskema.String("letter", func(c *ClassInfo) *string { return &c.Letter }),
	barskema.String("form_master", func(c *ClassInfo) *string { return &c.FormMaster }).Nullable(),
	barskema.String("form_master_photo", func(c *ClassInfo) *string { return &c.FormMasterPhoto }).Nullable(),
	barskema.Bool("form_master_male", func(c *ClassInfo) *bool { return &c.FormMasterMale }).Nullable(),
	barskema.String("specialization", func(c *ClassInfo) *string { return &c.Specialization }).Nullable(),
	barskema.String("photo", func(c *ClassInfo) *string { return &c.Photo }).Nullable(),
	barskema.ObjectList("pupils", PupilSchema, func(c *ClassInfo) *[]Pupil { return &c.Pupils }),
)
