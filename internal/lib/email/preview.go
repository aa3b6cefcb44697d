package email

// PreviewData contains sample template data for local preview/testing.
//
// It maps:
//
//	templateName -> (templateVariableName -> exampleValue)
var PreviewData = map[string]map[string]string{
	"contact": {
		"FirstName": "Juan",
		"LastName":  "Di Pasquo",
		"Email":     "juan@example.com",
		"Message":   "I would like to know more about the person API.",
	},
}
