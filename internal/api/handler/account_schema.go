package handler

type updateProfileRequest struct {
	FirstName    string                `json:"first_name"`
	SecondName   string                `json:"second_name"`
	LastName     string                `json:"last_name"`
	BusinessName string                `json:"business_name"`
	Phone        string                `json:"phone"`
	Address      string                `json:"address"`
	ProfileImage string                `json:"profile_image"`
	Location     string                `json:"location"`
	Client       *clientProfileRequest `json:"client"`
}

type changePasswordRequest struct {
	Current string `json:"current_password" validate:"required"`
	Next    string `json:"new_password" validate:"required,min=8"`
}

type upgradeToClientRequest struct {
	CoverImage string `json:"cover_image"`
	Bio        string `json:"bio"`
	Website    string `json:"website"`
	Facebook   string `json:"facebook"`
	Instagram  string `json:"instagram"`
	Twitter    string `json:"twitter"`
	LinkedIn   string `json:"linkedin"`
}
