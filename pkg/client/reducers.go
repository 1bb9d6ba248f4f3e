package client

type AuthState struct {
	Token           string
	IsAuthenticated bool
	Loading         bool
	ResetEmailSent  bool
	PasswordReset   bool
	Msg             string
}

type UserState struct {
	User    User
	Loading bool
	Error   *ErrorInfo
}

type ArtistState struct {
	Profile *Artist
	Loading bool
	Error   *ErrorInfo
}

type State struct {
	Auth   AuthState
	User   UserState
	Artist ArtistState
	Alerts []Alert
}

func InitialState() State {
	return State{
		Auth:   AuthState{Loading: true},
		User:   UserState{Loading: true},
		Artist: ArtistState{Loading: true},
		Alerts: []Alert{},
	}
}

// Reduce is the root reducer. Each slice ignores the action types it does
// not know, so an unknown action returns s unchanged.
func Reduce(s State, a Action) State {
	return State{
		Auth:   reduceAuth(s.Auth, a),
		User:   reduceUser(s.User, a),
		Artist: reduceArtist(s.Artist, a),
		Alerts: reduceAlerts(s.Alerts, a),
	}
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a.Type {
	case SigninSuccess, SaveUserSuccess:
		p, ok := a.Payload.(TokenPayload)
		if !ok {
			return s
		}
		s.Token = p.Token
		s.IsAuthenticated = p.Token != ""
		s.Loading = false
	case SigninFail:
		s.Token = ""
		s.IsAuthenticated = false
		s.Loading = false
	case ResetPasswordEmailSuccess:
		s.ResetEmailSent = true
		s.Msg, _ = a.Payload.(string)
	case ResetPasswordEmailFail:
		s.ResetEmailSent = false
		s.Msg = ""
	case ResetPasswordSuccess:
		s.PasswordReset = true
		s.Msg, _ = a.Payload.(string)
	case ResetPasswordFail:
		s.PasswordReset = false
		s.Msg = ""
	case ResetState:
		s.ResetEmailSent = false
		s.PasswordReset = false
		s.Msg = ""
	}
	return s
}

func reduceUser(s UserState, a Action) UserState {
	switch a.Type {
	case SaveUserSuccess:
		s.Loading = false
		s.Error = nil
	case SaveUserFail:
		msg, _ := a.Payload.(string)
		s.User = User{}
		s.Error = &ErrorInfo{Msg: msg}
	case SavePictureSuccess, FetchUserPicture, FetchUserInfo:
		u, ok := a.Payload.(User)
		if !ok {
			return s
		}
		s.User = u
		s.Loading = false
		s.Error = nil
	case SavePictureFail, FetchUserInfoFail:
		e, ok := a.Payload.(ErrorInfo)
		if !ok {
			return s
		}
		s.Loading = false
		s.Error = &e
	}
	return s
}

func reduceArtist(s ArtistState, a Action) ArtistState {
	switch a.Type {
	case GetArtistProfile, SaveArtistProfileSuccess:
		p, ok := a.Payload.(Artist)
		if !ok {
			return s
		}
		s.Profile = &p
		s.Loading = false
		s.Error = nil
	case ArtistProfileError:
		e, ok := a.Payload.(ErrorInfo)
		if !ok {
			return s
		}
		s.Loading = false
		s.Error = &e
	}
	return s
}

// reduceAlerts never mutates the incoming slice; published states share it.
func reduceAlerts(s []Alert, a Action) []Alert {
	switch a.Type {
	case SetAlert:
		al, ok := a.Payload.(Alert)
		if !ok {
			return s
		}
		out := make([]Alert, 0, len(s)+1)
		out = append(out, s...)
		return append(out, al)
	case RemoveAlert:
		id, ok := a.Payload.(string)
		if !ok {
			return s
		}
		out := make([]Alert, 0, len(s))
		for _, al := range s {
			if al.ID != id {
				out = append(out, al)
			}
		}
		return out
	}
	return s
}
