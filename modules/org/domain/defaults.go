package domain

// DefaultCompanyProfile is used when the singleton row does not yet exist
// remotely (first setup).
func DefaultCompanyProfile() CompanyProfile {
	return CompanyProfile{}
}

// DefaultAppSettings is used when the singleton row does not yet exist
// remotely (first setup).
func DefaultAppSettings() AppSettings {
	return AppSettings{
		EmailDomain:          "company.com",
		EmailFormat:          EmailFirstnameL,
		MaxManagerGradeLevel: 1,
	}
}
