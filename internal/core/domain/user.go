package domain

// Interviewer is the payload used to register a trainee as an interviewer.
type Interviewer struct {
	ID          string `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Title       string `json:"title"`
}

// User is a case-management user attached to an organisation unit.
type User struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// OrganisationUnit is a node of the case-management organisation tree.
type OrganisationUnit struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type,omitempty"`
	Users []User `json:"users,omitempty"`
}

// TrainingInterviewer returns placeholder identity data for a trainee.
func TrainingInterviewer(id string) Interviewer {
	return Interviewer{
		ID:          id,
		FirstName:   "FirstName",
		LastName:    "LastName",
		Email:       "firstname.lastname@valid.net",
		PhoneNumber: "+33000000000",
		Title:       "MISTER",
	}
}

// TrainingUser returns placeholder identity data for a trainee manager.
func TrainingUser(id string) User {
	return User{ID: id, FirstName: "FirstName", LastName: "LastName"}
}
