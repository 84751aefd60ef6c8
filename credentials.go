package sdk

import "net/url"

// AuthVariant selects how a caller identifies itself on authorize requests.
// Exactly two variants exist: AppAuth (app_id + optional app_key) and
// UserKeyAuth (user_key). Each variant contributes its own query
// parameters and its own required-field checks.
type AuthVariant interface {
	// queryParams adds the variant-specific parameters to the authorize
	// query string.
	queryParams(params url.Values)
	// missingFields returns a description of every absent required field.
	missingFields() []string
}

// AppAuth identifies a calling application by app id and (optionally) app
// key.
type AppAuth struct {
	AppID  string
	AppKey string
}

func (a AppAuth) queryParams(params url.Values) {
	params.Set("app_id", a.AppID)
	if a.AppKey != "" {
		params.Set("app_key", a.AppKey)
	}
}

func (a AppAuth) missingFields() []string {
	if a.AppID == "" {
		return []string{"app id not defined"}
	}
	return nil
}

// UserKeyAuth identifies an end user by a single user key.
type UserKeyAuth struct {
	UserKey string
}

func (u UserKeyAuth) queryParams(params url.Values) {
	params.Set("user_key", u.UserKey)
}

func (u UserKeyAuth) missingFields() []string {
	if u.UserKey == "" {
		return []string{"user key not defined"}
	}
	return nil
}

// Credentials holds the immutable identity used to authenticate against
// the usage-control API. ProviderKey is always required; Auth selects the
// authorize variant.
type Credentials struct {
	ProviderKey string
	Auth        AuthVariant
}

// Validate checks the fields required by the chosen variant and returns a
// *ValidationError listing every missing field, not just the first.
func (c Credentials) Validate() error {
	var missing []string
	if c.Auth == nil {
		missing = append(missing, "auth variant not defined")
	} else {
		missing = append(missing, c.Auth.missingFields()...)
	}
	if c.ProviderKey == "" {
		missing = append(missing, "provider key not defined")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}

// authorizeQuery builds the encoded query string for the authorize call.
// Callers must Validate first.
func (c Credentials) authorizeQuery() string {
	params := url.Values{}
	c.Auth.queryParams(params)
	params.Set("provider_key", c.ProviderKey)
	return params.Encode()
}
