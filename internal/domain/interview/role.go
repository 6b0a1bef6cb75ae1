package interview

import "strings"

// RoleCategory is the coarse job-family classification used to pick a
// relevant question subset.
type RoleCategory string

const (
	RoleNone                RoleCategory = ""
	RoleSalesforceAdmin     RoleCategory = "salesforce_admin"
	RoleSalesforceDeveloper RoleCategory = "salesforce_developer"
	RoleProgramAnalyst      RoleCategory = "program_analyst"
	RoleJavaFullstack       RoleCategory = "java_fullstack"
	RolePythonFullstack     RoleCategory = "python_fullstack"
	RoleDotnetFullstack     RoleCategory = "dotnet_fullstack"
)

var (
	salesforceDevKeywords = []string{"developer", "dev", "apex", "lightning"}
	analystKeywords       = []string{"analyst", "business analyst", "program analyst", "systems analyst"}
	javaKeywords          = []string{"java", "spring", "hibernate"}
	pythonKeywords        = []string{"python", "django", "flask"}
	dotnetKeywords        = []string{".net", "dotnet", "c#", "asp.net"}
)

// ClassifyRole maps a free-text job title to a role category. Checks are
// ordered and first match wins; a title matching no rule yields RoleNone.
func ClassifyRole(jobTitle string) RoleCategory {
	title := strings.ToLower(jobTitle)

	if strings.Contains(title, "salesforce") {
		if containsAny(title, salesforceDevKeywords) {
			return RoleSalesforceDeveloper
		}
		return RoleSalesforceAdmin
	}

	if containsAny(title, analystKeywords) {
		return RoleProgramAnalyst
	}

	if strings.Contains(title, "full stack") || strings.Contains(title, "fullstack") {
		switch {
		case containsAny(title, javaKeywords):
			return RoleJavaFullstack
		case containsAny(title, pythonKeywords):
			return RolePythonFullstack
		case containsAny(title, dotnetKeywords):
			return RoleDotnetFullstack
		}
	}

	if strings.Contains(title, "developer") {
		switch {
		case containsAny(title, javaKeywords):
			return RoleJavaFullstack
		case containsAny(title, pythonKeywords):
			return RolePythonFullstack
		case containsAny(title, dotnetKeywords):
			return RoleDotnetFullstack
		}
	}

	return RoleNone
}

// DisplayName returns the human-readable form of a role category, e.g.
// "salesforce_developer" -> "Salesforce Developer".
func (rc RoleCategory) DisplayName() string {
	words := strings.Split(strings.ReplaceAll(string(rc), "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// IsSalesforce reports whether the category is one of the Salesforce roles.
func (rc RoleCategory) IsSalesforce() bool {
	return rc == RoleSalesforceAdmin || rc == RoleSalesforceDeveloper
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
