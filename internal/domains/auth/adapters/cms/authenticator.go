package cms

import (
	"context"
	"errors"
	"net/http"

	cmsclient "github.com/Apurer/shop-admin/internal/clients/http/cms"
	"github.com/Apurer/shop-admin/internal/domains/auth/domain"
	"github.com/Apurer/shop-admin/internal/domains/auth/ports"
)

const loginPath = "/auth/local"

// Authenticator checks credentials with the CMS local login endpoint.
type Authenticator struct {
	client *cmsclient.Client
}

func NewAuthenticator(client *cmsclient.Client) *Authenticator {
	return &Authenticator{client: client}
}

type loginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type loginResponse struct {
	JWT  string `json:"jwt"`
	User struct {
		ID       int64  `json:"id"`
		Username string `json:"username"`
		Email    string `json:"email"`
		Blocked  bool   `json:"blocked"`
	} `json:"user"`
}

// Authenticate maps CMS 400/401/403 answers and blocked accounts to ErrInvalidCredentials.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (domain.Identity, error) {
	var res loginResponse
	err := a.client.Post(ctx, loginPath, loginRequest{Identifier: identifier, Password: password}, &res)
	if err != nil {
		var apiErr *cmsclient.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.Status {
			case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
				return domain.Identity{}, ports.ErrInvalidCredentials
			}
		}
		return domain.Identity{}, err
	}
	if res.User.ID == 0 || res.User.Blocked {
		return domain.Identity{}, ports.ErrInvalidCredentials
	}
	return domain.Identity{UserID: res.User.ID, Username: res.User.Username, Email: res.User.Email}, nil
}

var _ ports.Authenticator = (*Authenticator)(nil)
