package types

// EntityBundle holds everything the entity extractor pulled out of a
// segmented resume. Scalar fields are "" when nothing was found; list fields
// are deduplicated case-insensitively with first-seen order preserved.
type EntityBundle struct {
	Name             string   `json:"name"`
	Email            string   `json:"email"`
	Phone            string   `json:"phone"`
	Skills           []string `json:"skills"`
	Companies        []string `json:"companies"`
	JobTitles        []string `json:"job_titles"`
	EducationDegrees []string `json:"education_degrees"`
	Dates            []string `json:"dates"`
}
