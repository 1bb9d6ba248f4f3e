package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	DefaultAlertTimeout = 5 * time.Second
	authHeader          = "x-auth-token"
)

const (
	alertSigninFailed    = "E-mail or password incorrect."
	alertForgotFailed    = "E-mail could not be sent. Please review your e-mail address and try again."
	alertResetFailed     = "Link expired or invalid, please request a new one."
	alertUserInfoFailed  = "Could not load your account, please sign in again."
	alertProfileCreated  = "Profile created"
	alertProfileUpdated  = "Profile updated"
	alertPictureNotSaved = "Picture could not be saved."
	alertSignupFailed    = "Account could not be created, please try again."
	alertProfileNotFound = "Profile could not be loaded."
	alertProfileNotSaved = "Profile could not be saved."
)

// FieldError is one entry of an API {errors:[...]} body.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

// APIError is returned for any non-2xx response.
type APIError struct {
	Status int
	Msg    string
	Errors []FieldError
}

func (e *APIError) Error() string {
	if len(e.Errors) > 0 {
		return fmt.Sprintf("api %d: %s", e.Status, e.Errors[0].Msg)
	}
	if e.Msg != "" {
		return fmt.Sprintf("api %d: %s", e.Status, e.Msg)
	}
	return fmt.Sprintf("api %d: %s", e.Status, http.StatusText(e.Status))
}

func (e *APIError) info() ErrorInfo {
	return ErrorInfo{Msg: http.StatusText(e.Status), Status: e.Status}
}

type Client struct {
	baseURL      string
	http         *http.Client
	store        *Store
	log          logrus.FieldLogger
	alertTimeout time.Duration

	mu    sync.RWMutex
	token string
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option { return func(c *Client) { c.http = hc } }

func WithAlertTimeout(d time.Duration) Option { return func(c *Client) { c.alertTimeout = d } }

func WithLogger(l logrus.FieldLogger) Option { return func(c *Client) { c.log = l } }

func New(baseURL string, store *Store, opts ...Option) *Client {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         &http.Client{Timeout: 15 * time.Second},
		store:        store,
		log:          discard,
		alertTimeout: DefaultAlertTimeout,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) setToken(t string) {
	c.mu.Lock()
	c.token = t
	c.mu.Unlock()
}

// SetAlert shows msg and removes it again after the client's alert timeout.
func (c *Client) SetAlert(msg string, t AlertType) string {
	id := uuid.NewString()
	c.store.Dispatch(Action{Type: SetAlert, Payload: Alert{ID: id, Msg: msg, AlertType: t}})
	time.AfterFunc(c.alertTimeout, func() {
		c.store.Dispatch(Action{Type: RemoveAlert, Payload: id})
	})
	return id
}

// alertErrors raises one alert per validation message, or fallback when the
// response carried none (server errors, {msg} bodies, transport failures).
func (c *Client) alertErrors(err error, fallback string) {
	if apiErr, ok := err.(*APIError); ok && len(apiErr.Errors) > 0 {
		for _, fe := range apiErr.Errors {
			c.SetAlert(fe.Msg, AlertDanger)
		}
		return
	}
	if fallback != "" {
		c.SetAlert(fallback, AlertDanger)
	}
}

func errorInfo(err error) ErrorInfo {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.info()
	}
	return ErrorInfo{Msg: err.Error()}
}

func firstMessage(err error) string {
	if apiErr, ok := err.(*APIError); ok {
		if len(apiErr.Errors) > 0 {
			return apiErr.Errors[0].Msg
		}
		if apiErr.Msg != "" {
			return apiErr.Msg
		}
		return http.StatusText(apiErr.Status)
	}
	return err.Error()
}

// LoadUser restores a previously issued token; it makes no request.
func (c *Client) LoadUser(token string) {
	if token != "" {
		c.setToken(token)
	}
}

// SaveUser registers a new account and keeps the issued token.
func (c *Client) SaveUser(ctx context.Context, r Registration) error {
	var out TokenPayload
	if err := c.do(ctx, http.MethodPost, "/api/users", r, &out); err != nil {
		c.store.Dispatch(Action{Type: SaveUserFail, Payload: firstMessage(err)})
		c.alertErrors(err, alertSignupFailed)
		return err
	}
	c.setToken(out.Token)
	c.store.Dispatch(Action{Type: SaveUserSuccess, Payload: out})
	return nil
}

func (c *Client) Authenticate(ctx context.Context, cr Credentials) error {
	var out TokenPayload
	if err := c.do(ctx, http.MethodPost, "/api/auth", cr, &out); err != nil {
		c.store.Dispatch(Action{Type: SigninFail})
		c.SetAlert(alertSigninFailed, AlertDanger)
		return err
	}
	if out.Token == "" {
		c.store.Dispatch(Action{Type: SigninFail, Payload: out})
		return nil
	}
	c.setToken(out.Token)
	c.store.Dispatch(Action{Type: SigninSuccess, Payload: out})
	return nil
}

func (c *Client) FetchUserInfo(ctx context.Context) error {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/users/info", nil, &u); err != nil {
		c.store.Dispatch(Action{Type: FetchUserInfoFail, Payload: errorInfo(err)})
		c.SetAlert(alertUserInfoFailed, AlertDanger)
		return err
	}
	c.store.Dispatch(Action{Type: FetchUserInfo, Payload: u})
	return nil
}

func (c *Client) SavePicture(ctx context.Context, img Image) error {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/users/picture", img, &u); err != nil {
		c.store.Dispatch(Action{Type: SavePictureFail, Payload: errorInfo(err)})
		c.alertErrors(err, alertPictureNotSaved)
		return err
	}
	c.store.Dispatch(Action{Type: SavePictureSuccess, Payload: u})
	return nil
}

func (c *Client) SendForgotPasswordEmail(ctx context.Context, email string) error {
	var out struct {
		Msg string `json:"msg"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/auth/forgot-password", map[string]string{"email": email}, &out); err != nil {
		c.store.Dispatch(Action{Type: ResetPasswordEmailFail})
		c.SetAlert(alertForgotFailed, AlertDanger)
		return err
	}
	c.store.Dispatch(Action{Type: ResetPasswordEmailSuccess, Payload: out.Msg})
	return nil
}

func (c *Client) ResetPassword(ctx context.Context, userID, token, password string) error {
	path := "/api/auth/reset-password/" + url.PathEscape(userID) + "/" + url.PathEscape(token)
	var out struct {
		Msg string `json:"msg"`
	}
	if err := c.do(ctx, http.MethodPost, path, map[string]string{"password": password}, &out); err != nil {
		c.store.Dispatch(Action{Type: ResetPasswordFail})
		c.SetAlert(alertResetFailed, AlertDanger)
		return err
	}
	c.store.Dispatch(Action{Type: ResetPasswordSuccess, Payload: out.Msg})
	return nil
}

func (c *Client) ResetAuthState() {
	c.store.Dispatch(Action{Type: ResetState})
}

func (c *Client) GetArtistProfile(ctx context.Context, artistID string) error {
	var a Artist
	if err := c.do(ctx, http.MethodGet, "/api/artists/"+url.PathEscape(artistID), nil, &a); err != nil {
		c.store.Dispatch(Action{Type: ArtistProfileError, Payload: errorInfo(err)})
		c.SetAlert(alertProfileNotFound, AlertDanger)
		return err
	}
	c.store.Dispatch(Action{Type: GetArtistProfile, Payload: a})
	return nil
}

// SaveArtistProfile creates or updates the caller's profile; edit only picks
// the confirmation text.
func (c *Client) SaveArtistProfile(ctx context.Context, form Artist, edit bool) error {
	var a Artist
	if err := c.do(ctx, http.MethodPost, "/api/artists", form, &a); err != nil {
		c.alertErrors(err, alertProfileNotSaved)
		c.store.Dispatch(Action{Type: ArtistProfileError, Payload: errorInfo(err)})
		return err
	}
	c.store.Dispatch(Action{Type: SaveArtistProfileSuccess, Payload: a})
	if edit {
		c.SetAlert(alertProfileUpdated, AlertSuccess)
	} else {
		c.SetAlert(alertProfileCreated, AlertSuccess)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.Token(); t != "" {
		req.Header.Set(authHeader, t)
	}

	res, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).WithFields(logrus.Fields{"method": method, "path": path}).Warn("request failed")
		return err
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		apiErr := &APIError{Status: res.StatusCode}
		var payload struct {
			Msg    string       `json:"msg"`
			Errors []FieldError `json:"errors"`
		}
		if json.Unmarshal(raw, &payload) == nil {
			apiErr.Msg = payload.Msg
			apiErr.Errors = payload.Errors
		}
		c.log.WithFields(logrus.Fields{"method": method, "path": path, "status": res.StatusCode}).Debug("api error")
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}
