// Package client is the Go port of the web frontend's action/reducer layer:
// a small store of typed state slices and a set of actions that each call the
// tattoohub API and dispatch the outcome.
package client

type ActionType string

const (
	SaveUserSuccess    ActionType = "SAVE_USER_SUCCESS"
	SaveUserFail       ActionType = "SAVE_USER_FAIL"
	SavePictureSuccess ActionType = "SAVE_PICTURE_SUCCESS"
	SavePictureFail    ActionType = "SAVE_PICTURE_FAIL"
	FetchUserInfo      ActionType = "FETCH_USER_INFO"
	FetchUserInfoFail  ActionType = "FETCH_USER_INFO_FAIL"
	FetchUserPicture   ActionType = "FETCH_USER_PICTURE"

	SigninSuccess             ActionType = "SIGNIN_SUCCESS"
	SigninFail                ActionType = "SIGNIN_FAIL"
	ResetPasswordEmailSuccess ActionType = "RESET_PASSWORD_EMAIL_SUCCESS"
	ResetPasswordEmailFail    ActionType = "RESET_PASSWORD_EMAIL_FAIL"
	ResetPasswordSuccess      ActionType = "RESET_PASSWORD_SUCCESS"
	ResetPasswordFail         ActionType = "RESET_PASSWORD_FAIL"
	ResetState                ActionType = "RESET_STATE"

	GetArtistProfile         ActionType = "GET_ARTIST_PROFILE"
	SaveArtistProfileSuccess ActionType = "SAVE_ARTIST_PROFILE_SUCCESS"
	ArtistProfileError       ActionType = "ARTIST_PROFILE_ERROR"

	SetAlert    ActionType = "SET_ALERT"
	RemoveAlert ActionType = "REMOVE_ALERT"
)

// Action is what reducers consume. Payload's concrete type depends on Type;
// a payload of the wrong type leaves state untouched.
type Action struct {
	Type    ActionType
	Payload any
}

type AlertType string

const (
	AlertSuccess AlertType = "success"
	AlertDanger  AlertType = "danger"
)

type Alert struct {
	ID        string
	Msg       string
	AlertType AlertType
}

type Image struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url,omitempty"`
}

type Social struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Website   *string `json:"website,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

type Pricing struct {
	HourRate *float64 `json:"hourRate,omitempty"`
	MinRate  *float64 `json:"minRate,omitempty"`
	Currency string   `json:"currency,omitempty"`
}

type User struct {
	ID             string `json:"_id,omitempty"`
	Email          string `json:"email"`
	UserType       string `json:"userType,omitempty"`
	ProfilePicture *Image `json:"profilePicture,omitempty"`
}

// Artist is both the profile form and the profile returned by the API.
type Artist struct {
	ID             string   `json:"_id,omitempty"`
	User           string   `json:"user,omitempty"`
	FullName       string   `json:"fullName"`
	ProfilePicture *Image   `json:"profilePicture,omitempty"`
	CoverImage     *Image   `json:"coverImage,omitempty"`
	Biography      string   `json:"biography,omitempty"`
	Workplaces     []string `json:"workplaces,omitempty"`
	TattooStyles   []string `json:"tattooStyles,omitempty"`
	Portfolio      []Image  `json:"portfolio,omitempty"`
	Social         *Social  `json:"social,omitempty"`
	Pricing        *Pricing `json:"pricing,omitempty"`
}

type Registration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	UserType string `json:"userType"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenPayload struct {
	Token string `json:"token"`
}

// ErrorInfo is the {msg, status} pair stored by failure actions.
type ErrorInfo struct {
	Msg    string
	Status int
}
