// Package auth exchanges stored credentials for a bearer token and the
// instance URL that API calls must be addressed to.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/nochum/df23-data-loss-prevention/internal/config"
	"github.com/nochum/df23-data-loss-prevention/internal/failure"
)

const tokenPath = "/services/oauth2/token"

// Session is the authenticated context shared by the stream and REST calls.
type Session struct {
	AccessToken string
	InstanceURL string
	TenantID    string
}

// NewSession derives the tenant id from the token, which is prefixed by the org id.
func NewSession(accessToken, instanceURL string) *Session {
	return &Session{
		AccessToken: accessToken,
		InstanceURL: strings.TrimRight(instanceURL, "/"),
		TenantID:    TenantFromToken(accessToken),
	}
}

// TenantFromToken returns the part of the token before the first '!'.
func TenantFromToken(token string) string {
	if i := strings.IndexByte(token, '!'); i >= 0 {
		return token[:i]
	}
	return token
}

// Provider performs the OAuth2 password grant.
type Provider struct {
	oauth    oauth2.Config
	username string
	password string
	logger   *zap.Logger
}

// NewProvider creates a provider for the given credentials
func NewProvider(cfg config.Auth, logger *zap.Logger) *Provider {
	return &Provider{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL:  cfg.LoginURL + tokenPath,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		username: cfg.Username,
		password: cfg.Password,
		logger:   logger.With(zap.String("component", "auth")),
	}
}

// Login exchanges the credentials for a session. Failures are fatal.
func (p *Provider) Login(ctx context.Context) (*Session, error) {
	p.logger.Info("requesting access token", zap.String("token_url", p.oauth.Endpoint.TokenURL))

	tok, err := p.oauth.PasswordCredentialsToken(ctx, p.username, p.password)
	if err != nil {
		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil {
			p.logger.Error("login failed",
				zap.Int("status", re.Response.StatusCode),
				zap.String("body", string(re.Body)))
		}
		return nil, failure.New(failure.KindAuth, failure.Fatal, "login", errors.Wrap(err, "token exchange failed"))
	}

	instanceURL, _ := tok.Extra("instance_url").(string)
	if instanceURL == "" {
		return nil, failure.New(failure.KindAuth, failure.Fatal, "login",
			fmt.Errorf("token response did not include instance_url"))
	}

	session := NewSession(tok.AccessToken, instanceURL)
	p.logger.Info("login succeeded",
		zap.String("instance_url", session.InstanceURL),
		zap.String("tenant_id", session.TenantID))
	return session, nil
}
