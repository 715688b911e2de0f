package sheets

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/madnessDann/portal-precios/internal/errs"
)

const (
	defaultTokenURL = "https://oauth2.googleapis.com/token"
	defaultScope    = "https://www.googleapis.com/auth/spreadsheets"
	grantJWTBearer  = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// assertionTTL bounds the signed identity assertion, not the credential
	// the endpoint issues in exchange.
	assertionTTL = time.Hour

	// expiryMargin shortens the cached credential's lifetime so a token is
	// never handed out moments before the endpoint would reject it.
	expiryMargin = 60 * time.Second
)

// TokenSource exchanges a signed service-identity assertion for a bearer
// credential and caches it until shortly before expiry. A successful call
// always leaves one valid token cached; concurrent cold calls are serialized
// so at most one exchange is in flight.
type TokenSource struct {
	email    string
	key      *rsa.PrivateKey
	scope    string
	tokenURL string

	client *http.Client
	now    func() time.Time

	mu    sync.Mutex
	token string
	exp   time.Time
}

// NewTokenSource parses the PEM-encoded service-account private key and
// returns a ready token source. A malformed key fails immediately.
func NewTokenSource(email string, keyPEM []byte) (*TokenSource, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(keyPEM)
	if err != nil {
		return nil, &errs.AuthError{Detail: "parse service key: " + err.Error()}
	}
	return &TokenSource{
		email:    email,
		key:      key,
		scope:    defaultScope,
		tokenURL: defaultTokenURL,
		client:   &http.Client{Timeout: 10 * time.Second},
		now:      time.Now,
	}, nil
}

// Token returns a valid bearer credential, performing an exchange only when
// the cache is cold or expired. Exchange failures surface as AuthError with
// the endpoint's error body; no retry is attempted here.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.exp) {
		return ts.token, nil
	}

	assertion, err := ts.signAssertion()
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", grantJWTBearer)
	form.Set("assertion", assertion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", &errs.AuthError{Detail: err.Error()}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.client.Do(req)
	if err != nil {
		return "", &errs.AuthError{Detail: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &errs.AuthError{Detail: fmt.Sprintf("token exchange: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var tr struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", &errs.AuthError{Detail: "decode token response: " + err.Error()}
	}

	ts.token = tr.AccessToken
	ts.exp = ts.now().Add(time.Duration(tr.ExpiresIn)*time.Second - expiryMargin)
	return ts.token, nil
}

// signAssertion builds the short-lived RS256 identity assertion:
// issuer = service identity, audience = token endpoint, scope = store access.
func (ts *TokenSource) signAssertion() (string, error) {
	now := ts.now()
	claims := jwt.MapClaims{
		"iss":   ts.email,
		"scope": ts.scope,
		"aud":   ts.tokenURL,
		"iat":   now.Unix(),
		"exp":   now.Add(assertionTTL).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.key)
	if err != nil {
		return "", &errs.AuthError{Detail: "sign assertion: " + err.Error()}
	}
	return signed, nil
}
