package external_services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	kratosclient "github.com/ory/kratos-client-go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mikiasgoitom/ScribeSpace/internal/domain/apperror"
	"github.com/mikiasgoitom/ScribeSpace/internal/domain/contract"
)

// KratosAuth registers and signs in identities through Kratos native
// (API) flows with the password method. The identity schema must carry an
// "email" trait used as the password identifier.
type KratosAuth struct {
	api *kratosclient.APIClient
}

var _ contract.IAuthProvider = (*KratosAuth)(nil)

// NewKratosAuth creates a client for the Kratos public API at publicURL.
func NewKratosAuth(publicURL string, timeout time.Duration) *KratosAuth {
	cfg := kratosclient.NewConfiguration()
	cfg.Servers = []kratosclient.ServerConfiguration{{URL: strings.TrimRight(publicURL, "/")}}
	cfg.HTTPClient = &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	cfg.DefaultHeader = map[string]string{"Accept": "application/json"}
	return &KratosAuth{api: kratosclient.NewAPIClient(cfg)}
}

// SignUp creates the identity. Refusals by Kratos (duplicate email, weak
// password, schema violations) are reported as apperror.ErrAuthRejected.
func (k *KratosAuth) SignUp(ctx context.Context, email, password string) error {
	flow, httpResp, err := k.api.FrontendAPI.CreateNativeRegistrationFlow(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to start registration flow: %w", describe(err, httpResp))
	}

	body := kratosclient.UpdateRegistrationFlowWithPasswordMethod{
		Method:   "password",
		Password: password,
		Traits:   map[string]interface{}{"email": email},
	}
	_, httpResp, err = k.api.FrontendAPI.
		UpdateRegistrationFlow(ctx).
		Flow(flow.Id).
		UpdateRegistrationFlowBody(kratosclient.UpdateRegistrationFlowWithPasswordMethodAsUpdateRegistrationFlowBody(&body)).
		Execute()
	if err != nil {
		if isClientError(httpResp) {
			return fmt.Errorf("%w: %v", apperror.ErrAuthRejected, describe(err, httpResp))
		}
		return fmt.Errorf("failed to submit registration flow: %w", describe(err, httpResp))
	}
	return nil
}

// SignIn checks the password. A refused login is apperror.ErrInvalidCredentials.
func (k *KratosAuth) SignIn(ctx context.Context, email, password string) error {
	flow, httpResp, err := k.api.FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		return fmt.Errorf("failed to start login flow: %w", describe(err, httpResp))
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Identifier: email,
		Method:     "password",
		Password:   password,
	}
	_, httpResp, err = k.api.FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		if isClientError(httpResp) {
			return fmt.Errorf("%w: %v", apperror.ErrInvalidCredentials, describe(err, httpResp))
		}
		return fmt.Errorf("failed to submit login flow: %w", describe(err, httpResp))
	}
	return nil
}

func isClientError(resp *http.Response) bool {
	return resp != nil && resp.StatusCode >= 400 && resp.StatusCode < 500
}

// flowMessages is the part of a returned flow carrying validation messages.
type flowMessages struct {
	UI struct {
		Messages []struct {
			Text string `json:"text"`
		} `json:"messages"`
		Nodes []struct {
			Messages []struct {
				Text string `json:"text"`
			} `json:"messages"`
		} `json:"nodes"`
	} `json:"ui"`
	Error struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
	} `json:"error"`
}

// describe turns a Kratos error into one readable error, preferring the
// messages Kratos put in the flow's UI.
func describe(err error, resp *http.Response) error {
	var apiErr *kratosclient.GenericOpenAPIError
	if !errors.As(err, &apiErr) {
		return err
	}

	var parsed flowMessages
	if json.Unmarshal(apiErr.Body(), &parsed) == nil {
		var texts []string
		for _, m := range parsed.UI.Messages {
			texts = append(texts, m.Text)
		}
		for _, n := range parsed.UI.Nodes {
			for _, m := range n.Messages {
				texts = append(texts, m.Text)
			}
		}
		if parsed.Error.Reason != "" {
			texts = append(texts, parsed.Error.Reason)
		} else if parsed.Error.Message != "" {
			texts = append(texts, parsed.Error.Message)
		}
		if len(texts) > 0 {
			return errors.New(strings.Join(texts, "; "))
		}
	}
	if resp != nil {
		return fmt.Errorf("kratos returned %s", resp.Status)
	}
	return err
}
