// Package portfolio implements the portfolio content resources: models,
// the service on top of the document store, and the HTTP handlers.
package portfolio

// Location is a city/country pair shared by several resources.
type Location struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// About is the biography record.
type About struct {
	ID          string   `json:"id,omitempty"`
	Name        string   `json:"name"`
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Interests   []string `json:"interests"`
}

type EducationType string

const (
	EducationSchool     EducationType = "school"
	EducationUniversity EducationType = "university"
)

// YearRange spans an education entry; To is nil while ongoing.
type YearRange struct {
	From int  `json:"from"`
	To   *int `json:"to,omitempty"`
}

type Education struct {
	ID             string        `json:"id,omitempty"`
	Name           string        `json:"name"`
	Type           EducationType `json:"type"`
	Degree         *string       `json:"degree,omitempty"`
	Class          *string       `json:"class,omitempty"`
	Specialization *string       `json:"specialization,omitempty"`
	Location       Location      `json:"location"`
	Year           YearRange     `json:"year"`
}

// Contact is a singleton record; it has no id of its own.
type Contact struct {
	ProfessionalEmail *string `json:"professional_email,omitempty"`
	PersonalEmail     string  `json:"personal_email"`
	GitHub            string  `json:"github"`
	LinkedIn          string  `json:"linkedin"`
	Twitter           string  `json:"twitter"`
	Instagram         string  `json:"instagram"`
}

type Certificate struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Issuer      []string `json:"issuer"`
	URL         *string  `json:"url,omitempty"`
	Year        int      `json:"year"`
	Description *string  `json:"description,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Tags        []string `json:"tags"`
}

type ProgrammingLevel string

const (
	ProgrammingBeginner     ProgrammingLevel = "beginner"
	ProgrammingIntermediate ProgrammingLevel = "intermediate"
	ProgrammingAdvanced     ProgrammingLevel = "advanced"
)

type ProgrammingLanguage struct {
	ID    string           `json:"id,omitempty"`
	Name  string           `json:"name"`
	Level ProgrammingLevel `json:"level"`
}

type ProficiencyLevel string

const (
	ProficiencyBeginner     ProficiencyLevel = "beginner"
	ProficiencyIntermediate ProficiencyLevel = "intermediate"
	ProficiencyFluent       ProficiencyLevel = "fluent"
	ProficiencyNative       ProficiencyLevel = "native"
)

type SpokenLanguage struct {
	ID          string           `json:"id,omitempty"`
	Name        string           `json:"name"`
	Proficiency ProficiencyLevel `json:"proficiency"`
}

type TechStack struct {
	ID    string   `json:"id,omitempty"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}
