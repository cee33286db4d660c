package content

type Insights struct {
	Core             Core             `json:"core"`
	SympatheticLock  SympatheticLock  `json:"sympatheticLock"`
	PatientLanguage  PatientLanguage  `json:"patientLanguage"`
	ClinicalEvidence ClinicalEvidence `json:"clinicalEvidence"`
	DualAudience     DualAudience     `json:"dualAudience"`
	Treatment        Treatment        `json:"treatment"`
	CallToAction     CallToAction     `json:"callToAction"`
}

type Core struct {
	Discovery          string `json:"discovery"`
	Tagline            string `json:"tagline"`
	Mission            string `json:"mission"`
	BreakthroughMoment string `json:"breakthroughMoment"`
}

type SympatheticLock struct {
	Definition string   `json:"definition"`
	Analogy    Analogy  `json:"analogy"`
	Symptoms   []string `json:"symptoms"`
}

type Analogy struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	BeforeRPM   int    `json:"beforeRPM"`
	AfterRPM    int    `json:"afterRPM"`
	Visual      string `json:"visual"`
}

type PatientLanguage struct {
	Recognition []string `json:"recognition"`
	Validation  string   `json:"validation"`
}

type ClinicalEvidence struct {
	Experience    string `json:"experience"`
	PatientCount  string `json:"patientCount"`
	CovidImpact   string `json:"covidImpact"`
	ParadigmShift string `json:"paradigmShift"`
}

type DualAudience struct {
	Practitioners AudienceProfile `json:"practitioners"`
	Patients      AudienceProfile `json:"patients"`
}

type AudienceProfile struct {
	Title    string   `json:"title"`
	Focus    string   `json:"focus"`
	Benefits []string `json:"benefits"`
}

type Treatment struct {
	Philosophy     string `json:"philosophy"`
	Approach       string `json:"approach"`
	Timeline       string `json:"timeline"`
	Sustainability string `json:"sustainability"`
}

type CallToAction struct {
	Primary      string `json:"primary"`
	Secondary    string `json:"secondary"`
	Practitioner string `json:"practitioner"`
	Patient      string `json:"patient"`
}

type Testimonial struct {
	Text      string `json:"text"`
	Author    string `json:"author"`
	Condition string `json:"condition"`
	Outcome   string `json:"outcome"`
}

type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

type SiteMetadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Author      string `json:"author"`
	Keywords    string `json:"keywords"`
}

// Site is the full payload served by GET /api/content.
type Site struct {
	Insights     Insights      `json:"insights"`
	Testimonials []Testimonial `json:"testimonials"`
	Navigation   []NavLink     `json:"navigation"`
	Metadata     SiteMetadata  `json:"metadata"`
}
