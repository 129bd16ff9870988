package render

// Labels are the fixed strings both templates print around user content.
type Labels struct {
	Experience string
	Education  string
	Skills     string
	Present    string
	YourName   string
	GPA        string
}

// DefaultLabels returns the English labels.
func DefaultLabels() Labels {
	return Labels{
		Experience: "Experience",
		Education:  "Education",
		Skills:     "Skills",
		Present:    "Present",
		YourName:   "Your Name",
		GPA:        "GPA",
	}
}
