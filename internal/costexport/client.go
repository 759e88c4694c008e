package costexport

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

const (
	apiVersion    = "2023-03-01"
	moduleName    = "costexport.Client"
	moduleVersion = "v1.0.0"
)

// Client talks to the Cost Management Exports API through the ARM pipeline.
type Client struct {
	internal *arm.Client
	scope    string
}

// SubscriptionScope returns the billing scope path for a subscription.
func SubscriptionScope(subscriptionID string) string {
	return "/subscriptions/" + subscriptionID
}

func New(scope string, credential azcore.TokenCredential, options *arm.ClientOptions) (*Client, error) {
	internal, err := arm.NewClient(moduleName, moduleVersion, credential, options)
	if err != nil {
		return nil, fmt.Errorf("failed to create exports client: %w", err)
	}

	return &Client{
		internal: internal,
		scope:    scope,
	}, nil
}

// CreateOrUpdate submits the export definition. The PUT is an upsert keyed
// by name and scope, so re-running with the same inputs updates in place
// and never duplicates the export.
func (c *Client) CreateOrUpdate(ctx context.Context, name string, export Export) (Export, error) {
	req, err := c.newRequest(ctx, http.MethodPut, name)
	if err != nil {
		return Export{}, err
	}
	if err := runtime.MarshalAsJSON(req, export); err != nil {
		return Export{}, err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return Export{}, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusCreated) {
		return Export{}, runtime.NewResponseError(resp)
	}

	result := Export{}
	if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
		return Export{}, err
	}
	return result, nil
}

// Run requests an immediate execution of the export. The service runs it
// asynchronously; only the submission is awaited here.
func (c *Client) Run(ctx context.Context, name string) error {
	req, err := c.newRequest(ctx, http.MethodPost, name, "run")
	if err != nil {
		return err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK, http.StatusAccepted) {
		return runtime.NewResponseError(resp)
	}
	return nil
}

// RunHistory lists the finished and in-flight executions of the export.
func (c *Client) RunHistory(ctx context.Context, name string) ([]ExportRun, error) {
	req, err := c.newRequest(ctx, http.MethodGet, name, "runHistory")
	if err != nil {
		return nil, err
	}

	resp, err := c.internal.Pipeline().Do(req)
	if err != nil {
		return nil, err
	}
	if !runtime.HasStatusCode(resp, http.StatusOK) {
		return nil, runtime.NewResponseError(resp)
	}

	result := runListResult{}
	if err := runtime.UnmarshalAsJSON(resp, &result); err != nil {
		return nil, err
	}
	return result.Value, nil
}

func (c *Client) newRequest(ctx context.Context, method, name string, extra ...string) (*policy.Request, error) {
	parts := append([]string{c.scope, "providers/Microsoft.CostManagement/exports", url.PathEscape(name)}, extra...)
	req, err := runtime.NewRequest(ctx, method, runtime.JoinPaths(c.internal.Endpoint(), parts...))
	if err != nil {
		return nil, err
	}
	reqQP := req.Raw().URL.Query()
	reqQP.Set("api-version", apiVersion)
	req.Raw().URL.RawQuery = reqQP.Encode()
	req.Raw().Header["Accept"] = []string{"application/json"}
	return req, nil
}
