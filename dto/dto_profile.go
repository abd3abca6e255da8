package dto

// ProfileReq is the body of POST /api/profile. Absent or blank fields leave
// the stored value as it is. Skills is a comma separated list.
type ProfileReq struct {
	Company        string `json:"company,omitempty"`
	Location       string `json:"location,omitempty"`
	Website        string `json:"website,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Status         string `json:"status" validate:"required"`
	GithubUsername string `json:"githubusername,omitempty"`
	Skills         string `json:"skills" validate:"required"`
	YouTube        string `json:"youtube,omitempty"`
	Twitter        string `json:"twitter,omitempty"`
	Facebook       string `json:"facebook,omitempty"`
	Instagram      string `json:"instagram,omitempty"`
	LinkedIn       string `json:"linkedin,omitempty"`
}
